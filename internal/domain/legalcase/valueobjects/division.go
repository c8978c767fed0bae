package valueobjects

import "fmt"

type Division string

const (
	DivisionCivil     Division = "civil"
	DivisionCriminal  Division = "criminal"
	DivisionAppellate Division = "appellate"
)

var divisionCategories = map[Division]CategoryCode{
	DivisionCivil:     CategoryCivil,
	DivisionCriminal:  CategoryCriminal,
	DivisionAppellate: CategorySupremeCourt,
}

func (d Division) String() string {
	return string(d)
}

func (d Division) IsValid() bool {
	_, ok := divisionCategories[d]
	return ok
}

// DefaultCategory is the archive category a case of this division files under
// unless staff pick another.
func (d Division) DefaultCategory() CategoryCode {
	return divisionCategories[d]
}

func NewDivision(s string) (Division, error) {
	d := Division(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid division: %s", s)
	}
	return d, nil
}

// CategoryCode is the archive filing category.
type CategoryCode string

const (
	CategoryCivil        CategoryCode = "CV"
	CategoryCriminal     CategoryCode = "CR"
	CategorySupremeCourt CategoryCode = "SC"
)

func (c CategoryCode) String() string {
	return string(c)
}

func (c CategoryCode) IsValid() bool {
	return c == CategoryCivil || c == CategoryCriminal || c == CategorySupremeCourt
}

func NewCategoryCode(s string) (CategoryCode, error) {
	c := CategoryCode(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category code: %s", s)
	}
	return c, nil
}
