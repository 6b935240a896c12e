// Package constants defines table names and business limits shared across
// models and repositories.
package constants

// Table names
const (
	TableAuthors          = "authors"
	TableBooks            = "books"
	TableSuppliers        = "suppliers"
	TableAccounts         = "accounts"
	TableAccountHistories = "account_histories"
	TableDocuments        = "documents"
	TableSections         = "sections"
	TableParagraphs       = "paragraphs"
	TableAssemblies       = "assemblies"
	TableParts            = "parts"
	TableAssembliesParts  = "assemblies_parts"
	TableOrders           = "orders"
	TableProducts         = "products"
	TableOrderProducts    = "order_products"
	TableEntries          = "entries"
	TableMessages         = "messages"
	TableComments         = "comments"
	TablePictures         = "pictures"
	TableEmployees        = "employees"
	TablePhysicians       = "physicians"
	TablePatients         = "patients"
	TableAppointments     = "appointments"
	TableVehicles         = "vehicles"
)

// AuthorBookLimit caps how many books an author may hold. The limit is
// enforced by the association gate on AddBook, not by a column constraint.
const AuthorBookLimit = 2

// EntryTitleMaxLen bounds delegated entry titles, trailing marker included.
const EntryTitleMaxLen = 20

// DefaultOrderQuantity is the quantity a join row gets when none is given.
const DefaultOrderQuantity = 1
