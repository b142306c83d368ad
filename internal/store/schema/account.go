package schema

import (
	"github.com/shopspring/decimal"
)

// Account represents the accounts table - one row per address ever referenced
// by an event. Created lazily on first reference.
type Account struct {
	// ID is the lowercase hex address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NetRevenueInETH is the realized revenue earned by this account as a seller
	NetRevenueInETH decimal.Decimal `gorm:"column:net_revenue_in_eth;not null;type:numeric(78,18)"`
	// NetRevenuePendingInETH is the provisional revenue attributed while auctions are open
	NetRevenuePendingInETH decimal.Decimal `gorm:"column:net_revenue_pending_in_eth;not null;type:numeric(78,18)"`
}

// TableName specifies the table name for the Account model
func (Account) TableName() string {
	return "accounts"
}

// Creator represents the creators table - exists only once an address is
// established as a token creator. Shares its id with the account row.
type Creator struct {
	// ID equals the creator's account id
	ID string `gorm:"column:id;primaryKey;type:text"`
	// AccountID references the backing account
	AccountID string `gorm:"column:account_id;not null;type:text"`
	// NetSalesInETH is the realized total sale volume across this creator's tokens
	NetSalesInETH decimal.Decimal `gorm:"column:net_sales_in_eth;not null;type:numeric(78,18)"`
	// NetSalesPendingInETH is the pending counterpart of NetSalesInETH
	NetSalesPendingInETH decimal.Decimal `gorm:"column:net_sales_pending_in_eth;not null;type:numeric(78,18)"`
	// NetRevenueInETH is the realized creator share across this creator's tokens
	NetRevenueInETH decimal.Decimal `gorm:"column:net_revenue_in_eth;not null;type:numeric(78,18)"`
	// NetRevenuePendingInETH is the pending counterpart of NetRevenueInETH
	NetRevenuePendingInETH decimal.Decimal `gorm:"column:net_revenue_pending_in_eth;not null;type:numeric(78,18)"`
}

// TableName specifies the table name for the Creator model
func (Creator) TableName() string {
	return "creators"
}
