package models

import "time"

// FileType represents the kind of a MediaFile record
type FileType string

const (
	FileTypeVideo FileType = "video"
	FileTypePDF   FileType = "pdf"
)

// WebglFormat represents the detected format of a WebGL asset
type WebglFormat string

const (
	WebglFormatGLTF    WebglFormat = "GLTF"
	WebglFormatGLB     WebglFormat = "GLB"
	WebglFormatPNG     WebglFormat = "PNG"
	WebglFormatUnknown WebglFormat = "Unknown"
)

// MediaFile represents an uploaded video or PDF document.
// Duration and Resolution are populated for videos only, PageCount for PDFs only.
type MediaFile struct {
	ID           string    `json:"id" db:"id"`
	Filename     string    `json:"filename" db:"filename"`
	OriginalName string    `json:"originalName" db:"original_name"`
	MimeType     string    `json:"mimeType" db:"mime_type"`
	Size         int64     `json:"size" db:"size"`
	FileType     FileType  `json:"fileType" db:"file_type"`
	UploadDate   time.Time `json:"uploadDate" db:"upload_date"`
	Duration     float64   `json:"duration,omitempty" db:"duration"`
	Resolution   string    `json:"resolution,omitempty" db:"resolution"`
	PageCount    int       `json:"pageCount,omitempty" db:"page_count"`
}

// AudioRecording represents an uploaded audio recording.
// Name is user-editable via rename; everything else is fixed at upload time.
type AudioRecording struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Filename     string    `json:"filename" db:"filename"`
	Size         int64     `json:"size" db:"size"`
	Duration     float64   `json:"duration" db:"duration"`
	DateRecorded time.Time `json:"dateRecorded" db:"date_recorded"`
	Format       string    `json:"format" db:"format"`
}

// WebglAsset represents an uploaded WebGL 3D asset or texture
type WebglAsset struct {
	ID           string      `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Filename     string      `json:"filename" db:"filename"`
	Size         int64       `json:"size" db:"size"`
	Format       WebglFormat `json:"format" db:"format"`
	Description  string      `json:"description,omitempty" db:"description"`
	DateUploaded time.Time   `json:"dateUploaded" db:"date_uploaded"`
}

// WebglFormatFromExtension maps an upload extension to the asset format.
// Extensions outside the allow-list never reach this point; .fbx is accepted
// for upload but has no dedicated format.
func WebglFormatFromExtension(ext string) WebglFormat {
	switch ext {
	case ".gltf":
		return WebglFormatGLTF
	case ".glb":
		return WebglFormatGLB
	case ".png":
		return WebglFormatPNG
	default:
		return WebglFormatUnknown
	}
}
