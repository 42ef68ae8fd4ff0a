package dispatchaudit

import "time"

// DispatchEvent is one audited call to pkg/message.Dispatcher.Dispatch: the
// type tag routed on, the payload size, and whether decoding succeeded.
type DispatchEvent struct {
	ID          uint `gorm:"primaryKey"`
	TypeTag     uint32
	PayloadSize int
	Outcome     string `gorm:"index"`
	CreatedAt   time.Time
}

// TableName pins the GORM-managed table name independent of the struct
// name, so renaming DispatchEvent never requires a migration.
func (DispatchEvent) TableName() string { return "dispatch_events" }

// AllModels lists every model AutoMigrate must know about.
func AllModels() []any {
	return []any{&DispatchEvent{}}
}
