// Package queries contains read-only operations. Active-order views are served from the
// active-order cache with a read-through to the order store; the menu is read straight
// from the database.
package queries
