// Package importers reads book lists produced outside the application.
//
// Importers only decode raw text fields. Validation is left to
// catalog.ParseForm so that imported entries obey the same rules as
// entries typed by the user.
package importers
