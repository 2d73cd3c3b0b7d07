// Package alfroster extracts structured facility records from the
// Nebraska Assisted Living Facility Roster, a multi-page government PDF
// whose page text lists facilities in a loose, semi-tabular layout. The
// extracted records are serialized to tabular output (CSV or XLSX) and
// can be stored locally for later querying.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., fitz/,
// sqlite/, xlsx/).
package alfroster
