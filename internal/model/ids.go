package model

import "fmt"

// FormatPlanID renders a numeric plan key as "p" plus the decimal value
// zero-padded to at least four digits: 7 -> "p0007", 12345 -> "p12345".
func FormatPlanID(n int) string {
	return fmt.Sprintf("p%04d", n)
}

// FormatUserID renders a numeric user key with the "u" prefix using the
// same padding scheme as FormatPlanID.
func FormatUserID(n int) string {
	return fmt.Sprintf("u%04d", n)
}
