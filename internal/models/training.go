package models

// Training → Module → SubModule → Lesson is a strict containment
// hierarchy. Deleting a parent cascades to its children (enforced by the
// repository inside one transaction, plus the FK constraints).

type Training struct {
	BaseModel
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	ThumbnailKey string `json:"-"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`

	Modules []Module `gorm:"foreignKey:TrainingID;constraint:OnDelete:CASCADE" json:"modules,omitempty"`
	Users   []User   `gorm:"many2many:training_users" json:"users,omitempty"`
}

type Module struct {
	BaseModel
	TrainingID   uint   `gorm:"not null;index" json:"trainingId"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	ThumbnailKey string `json:"-"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`

	SubModules []SubModule `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE" json:"subModules,omitempty"`
	Users      []User      `gorm:"many2many:module_users" json:"users,omitempty"`
}

type SubModule struct {
	BaseModel
	ModuleID     uint   `gorm:"not null;index" json:"moduleId"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	ThumbnailKey string `json:"-"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`

	Lessons []Lesson `gorm:"foreignKey:SubModuleID;constraint:OnDelete:CASCADE" json:"lessons,omitempty"`
	Users   []User   `gorm:"many2many:sub_module_users" json:"users,omitempty"`
}

type Lesson struct {
	BaseModel
	SubModuleID  uint   `gorm:"not null;index" json:"subModuleId"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `json:"description"`
	Content      string `json:"content"` // video / embed URL
	ThumbnailKey string `json:"-"`
	Order        int    `gorm:"column:sort_order;default:0" json:"order"`
}
