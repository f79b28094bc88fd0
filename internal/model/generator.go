package model

// GenerateRequest represents a password generation request.
// Pointer bools allow distinguishing between missing (nil -> default true) and explicit false.
type GenerateRequest struct {
	Length           int   `json:"length"`
	Lowercase        *bool `json:"lowercase"`
	Uppercase        *bool `json:"uppercase"`
	Digits           *bool `json:"digits"`
	Symbols          *bool `json:"symbols"`
	ExcludeAmbiguous bool  `json:"exclude_ambiguous"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string `json:"password"`
	Length   int    `json:"length"`
}

// CategoryCharset describes one character category for display purposes.
type CategoryCharset struct {
	Name     string `json:"name"`
	Alphabet string `json:"alphabet"`
}

// CharsetsResponse lists the reference alphabets and the ambiguous set.
// The values are constants; clients may use them for help text or previews.
type CharsetsResponse struct {
	Categories []CategoryCharset `json:"categories"`
	Ambiguous  string            `json:"ambiguous"`
}
