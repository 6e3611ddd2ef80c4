package types

// Placeholders rendered for date-of-birth components that have not been seen.
const (
	DayPlaceholder  = "--"
	YearPlaceholder = "----"
)

// dayWidth is the number of leading characters of the composite owned by
// the day component.
const dayWidth = 2

// DateOfBirth is the composite "DD" + "YYYY" value assembled from separate
// birth day and birth year rows, which may arrive in either order.
// Setting the day replaces the leading two characters of the composite;
// setting the year replaces everything after them. The zero value renders
// as placeholders.
type DateOfBirth struct {
	value   string
	daySet  bool
	yearSet bool
}

func (d DateOfBirth) composite() string {
	if !d.Observed() {
		return DayPlaceholder + YearPlaceholder
	}
	return d.value
}

// SetDay replaces the leading two characters of the composite with day.
// A single character is zero-padded first.
func (d *DateOfBirth) SetDay(day string) {
	if len(day) == 1 {
		day = "0" + day
	}
	cur := d.composite()
	d.value = day + cur[min(dayWidth, len(cur)):]
	d.daySet = true
}

// SetYear replaces everything after the leading two characters of the
// composite with year.
func (d *DateOfBirth) SetYear(year string) {
	cur := d.composite()
	d.value = cur[:min(dayWidth, len(cur))] + year
	d.yearSet = true
}

// Day returns the leading two characters of the composite.
func (d DateOfBirth) Day() string {
	cur := d.composite()
	return cur[:min(dayWidth, len(cur))]
}

// Year returns the composite after the day characters.
func (d DateOfBirth) Year() string {
	cur := d.composite()
	return cur[min(dayWidth, len(cur)):]
}

// Complete reports whether both components have been set.
func (d DateOfBirth) Complete() bool {
	return d.daySet && d.yearSet
}

// Observed reports whether at least one component has been set.
func (d DateOfBirth) Observed() bool {
	return d.daySet || d.yearSet
}

// String returns the composite with placeholders for characters no row has
// supplied yet.
func (d DateOfBirth) String() string {
	return d.composite()
}
