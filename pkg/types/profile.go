package types

// ProfileSummary describes one section found in the credentials file
type ProfileSummary struct {
	Name        string
	Line        int    // 1-based line of the section header
	AccountID   string // leading 12 digits of the name, if any
	AccessKeyID string // from the line after the header, if present
	Complete    bool   // header followed by access key, secret key and session token lines
}
