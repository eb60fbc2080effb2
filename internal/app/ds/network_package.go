package ds

// NetworkPackage is one catalog row. Price, duration and tier are kept as
// entered and validated when the catalog is loaded.
type NetworkPackage struct {
	ID        uint   `gorm:"primaryKey"`
	Position  int    `gorm:"not null;uniqueIndex"` // 1-based display order
	Price     string `gorm:"type:varchar(32);not null"`
	Duration  string `gorm:"type:varchar(64);not null"`
	Tier      string `gorm:"type:varchar(20);not null"`
	IsDeleted bool   `gorm:"type:boolean;default:false;not null"`
}
