package domain

// CategoryKind distinguishes the income and expense category variants.
type CategoryKind string

const (
	CategoryIncome  CategoryKind = "income"
	CategoryExpense CategoryKind = "expense"
)

// Valid reports whether k is one of the known category kinds.
func (k CategoryKind) Valid() bool {
	return k == CategoryIncome || k == CategoryExpense
}

// Category is a named grouping for income or expense entries, scoped per owner.
// It cannot be deleted while any entry references it.
type Category struct {
	CategoryID  string       `json:"categoryID"`
	UserID      string       `json:"userID"`
	Kind        CategoryKind `json:"kind"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	AuditFields
}
