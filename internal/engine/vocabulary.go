package engine

import "db-census/internal/dialect"

// columnVocabulary is the pool seeded tables draw their non-key columns from.
// Names are deliberately abbreviated the way legacy schemas often are.
var columnVocabulary = []dialect.ColumnDef{
	{Name: "usr_nm", Type: "TEXT"},
	{Name: "email_addr", Type: "TEXT"},
	{Name: "tel_no", Type: "TEXT"},
	{Name: "addr", Type: "TEXT"},
	{Name: "zip_cd", Type: "TEXT"},
	{Name: "city", Type: "TEXT"},
	{Name: "country", Type: "TEXT"},
	{Name: "tit", Type: "TEXT"},
	{Name: "prod_desc", Type: "TEXT"},
	{Name: "msg", Type: "TEXT"},
	{Name: "stat_cd", Type: "TEXT"},
	{Name: "use_yn", Type: "TEXT"},
	{Name: "reg_dt", Type: "DATETIME"},
	{Name: "upd_dt", Type: "DATETIME"},
	{Name: "birth_dt", Type: "DATE"},
	{Name: "qty", Type: "INTEGER"},
	{Name: "ord_seq", Type: "INTEGER"},
	{Name: "is_active", Type: "INTEGER"},
	{Name: "release_year", Type: "INTEGER"},
	{Name: "amt", Type: "REAL"},
	{Name: "bal", Type: "NUMERIC"},
	{Name: "lat", Type: "REAL"},
	{Name: "lng", Type: "REAL"},
	{Name: "verified", Type: "BOOLEAN"},
	{Name: "img", Type: "BLOB"},
}

// keyColumn leads every seeded table.
var keyColumn = dialect.ColumnDef{Name: "id", Type: "INTEGER PRIMARY KEY"}
