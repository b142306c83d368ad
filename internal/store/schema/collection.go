package schema

// CollectionContract represents the collection_contracts table - one row per
// collection deployed through the factory
type CollectionContract struct {
	// ID is the lowercase hex collection address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NftContractID references the nft contract row for the same address
	NftContractID string `gorm:"column:nft_contract_id;not null;type:text"`
	// CreatorID references the deploying creator
	CreatorID string `gorm:"column:creator_id;not null;type:text"`
	// Version is {factory}-{version}
	Version string `gorm:"column:version;not null;type:text"`
	// DateCreated is the block timestamp of deployment, unix seconds
	DateCreated int64 `gorm:"column:date_created;not null"`
	// DateSelfDestructed is set when the collection self-destructs and
	// cleared again if the same address is re-created
	DateSelfDestructed *int64 `gorm:"column:date_self_destructed"`
}

// TableName specifies the table name for the CollectionContract model
func (CollectionContract) TableName() string {
	return "collection_contracts"
}

// NftDropCollectionContract represents the nft_drop_collection_contracts
// table - collections created through the drop factory
type NftDropCollectionContract struct {
	ID            string `gorm:"column:id;primaryKey;type:text"`
	NftContractID string `gorm:"column:nft_contract_id;not null;type:text"`
	CreatorID     string `gorm:"column:creator_id;not null;type:text"`
	// ApprovedMinterID is unset when the drop has no dedicated minter
	ApprovedMinterID   *string `gorm:"column:approved_minter_id;type:text"`
	PaymentAddressID   string  `gorm:"column:payment_address_id;not null;type:text"`
	Version            string  `gorm:"column:version;not null;type:text"`
	DateCreated        int64   `gorm:"column:date_created;not null"`
	DateSelfDestructed *int64  `gorm:"column:date_self_destructed"`
}

// TableName specifies the table name for the NftDropCollectionContract model
func (NftDropCollectionContract) TableName() string {
	return "nft_drop_collection_contracts"
}
