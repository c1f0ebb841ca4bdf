package models

type Album struct {
	ID     int64  `db:"id" json:"id"`
	Album  string `db:"album" json:"album"`
	Artist string `db:"artist" json:"artist"`
	Genre  string `db:"genre" json:"genre"`
	Year   int    `db:"year" json:"year"`
}

// ExecResult mirrors the driver's statement result in a JSON-friendly shape.
type ExecResult struct {
	InsertID     int64 `json:"insertId"`
	AffectedRows int64 `json:"affectedRows"`
}
