package domain

// UploadResult describes a file stored on the media bucket. It is a
// transient value; only the URL ends up on the user record.
type UploadResult struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
