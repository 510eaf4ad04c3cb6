package contract

type CreateBackupRequest struct {
	Reason string `json:"reason" validate:"omitempty,min=2,max=40,alphanum"`
}

type RestoreBackupRequest struct {
	Filename string `json:"filename" validate:"required"`
}

type BackupResult struct {
	Filename  string `json:"filename"`
	Size      int64  `json:"size"`
	Timestamp string `json:"timestamp"`
}

type BackupEntry struct {
	Filename string  `json:"filename"`
	Size     int64   `json:"size"`
	SizeMB   float64 `json:"size_mb"`
	Modified string  `json:"modified"`
	Reason   string  `json:"reason"`
}

type BackupStats struct {
	Count       int     `json:"count"`
	TotalSizeMB float64 `json:"total_size_mb"`
	Newest      string  `json:"newest,omitempty"`
	Oldest      string  `json:"oldest,omitempty"`
}
