package tenant

import "gorm.io/gorm"

// Scope filters a query to one company's rows. Every read and write
// on company-owned tables goes through this so a request can never
// see another tenant's data.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ScopeTable is Scope for joined queries where the company column
// must be qualified with its table name.
func ScopeTable(table, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(table+".company_id = ?", companyID)
	}
}
