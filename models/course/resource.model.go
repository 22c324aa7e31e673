package course

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Resource types
const (
	ResourceTypeVideo        = "VIDEO"
	ResourceTypePDF          = "PDF"
	ResourceTypeDocument     = "DOCUMENT"
	ResourceTypePresentation = "PRESENTATION"
	ResourceTypeSpreadsheet  = "SPREADSHEET"
	ResourceTypeImage        = "IMAGE"
	ResourceTypeAudio        = "AUDIO"
	ResourceTypeLink         = "LINK"
	ResourceTypeOther        = "OTHER"
)

// Resource represents a downloadable/linked material attached to a course.
// Resources are an unordered sibling set, there is no position invariant.
type Resource struct {
	gorm.Model
	CourseID      uint           `json:"course_id" gorm:"index;not null"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Type          string         `json:"type" gorm:"default:'OTHER'"` // VIDEO, PDF, DOCUMENT, PRESENTATION, SPREADSHEET, IMAGE, AUDIO, LINK, OTHER
	URL           string         `json:"url" gorm:"not null"`
	FileSize      int64          `json:"file_size" gorm:"default:0"`
	MimeType      string         `json:"mime_type"`
	DownloadCount int            `json:"download_count" gorm:"default:0"`
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"` // uploader-supplied file metadata, opaque to the API
}

func (Resource) TableName() string { return "course_resources" }
