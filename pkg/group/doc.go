// Package group models related-file families: ordered sets of 2 to 4 path
// templates that name each other's siblings, and the ordered registry that
// gives earlier-registered families priority.
package group
