package award

// CanonicalSupplierID derives the canonical supplier identity from an
// identifier scheme and id: "{scheme}-{id}". The concatenation is
// case-sensitive; callers normalize case before comparison where a rule
// requires it.
func CanonicalSupplierID(scheme, id string) string {
	return scheme + "-" + id
}

// Identifier is an organization identifier within a registration scheme.
type Identifier struct {
	Scheme    string
	ID        string
	LegalName string
	URI       string
}

// Address is the postal address of a supplier.
type Address struct {
	StreetAddress string
	Locality      string
	Region        string
	PostalCode    string
	CountryName   string
}

// ContactPoint holds the contact details of a supplier.
type ContactPoint struct {
	Name      string
	Email     string
	Telephone string
	FaxNumber string
	URL       string
}

// Supplier is an organization reference attached to an award. The ID field is
// the derived canonical identity; it is assigned during award construction and
// used for all uniqueness comparisons. Suppliers are immutable once the award
// is created.
type Supplier struct {
	ID                    string
	Name                  string
	Identifier            Identifier
	AdditionalIdentifiers []Identifier
	Address               Address
	ContactPoint          ContactPoint
	Scale                 string
}

// CanonicalID returns the canonical identity derived from the supplier's
// primary identifier.
func (s Supplier) CanonicalID() string {
	return CanonicalSupplierID(s.Identifier.Scheme, s.Identifier.ID)
}
