package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// MaxImageUploadSize caps post image uploads at 10 MiB.
const MaxImageUploadSize = 10 << 20
