package schema

// BlockCursor represents the block_cursors table - the replay position per
// event source, so a restart resumes where the previous run stopped
type BlockCursor struct {
	// ID names the cursor, e.g. the consumer stream
	ID string `gorm:"column:id;primaryKey;type:text"`
	// BlockNumber is the last fully applied block
	BlockNumber uint64 `gorm:"column:block_number;not null"`
	// LogIndex is the last applied log within that block
	LogIndex uint `gorm:"column:log_index;not null"`
}

// TableName specifies the table name for the BlockCursor model
func (BlockCursor) TableName() string {
	return "block_cursors"
}
