package output

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/lgbarn/octad-go/internal/config"
	"github.com/lgbarn/octad-go/internal/game"
)

// positionNamespace scopes the name-based position IDs.
var positionNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("urn:octad:ofen"))

// PositionID returns a stable name-based UUID for a position: the canonical
// record with both clocks zeroed. Records differing only in their clocks or
// in layout spelling share an ID.
func PositionID(s *game.State) string {
	c := *s
	c.HalfmoveClock = 0
	c.MoveNumber = 1
	return uuid.NewSHA1(positionNamespace, []byte(c.ToOFEN())).String()
}

// JSONRecord represents an accepted record in JSON format.
type JSONRecord struct {
	ID        string     `json:"id"`
	OFEN      string     `json:"ofen"`
	Layout    string     `json:"layout"`
	ToMove    string     `json:"toMove"` // "white" or "black"
	Castling  string     `json:"castling"`
	EnPassant string     `json:"enPassant,omitempty"`
	Halfmove  uint       `json:"halfmove"`
	Fullmove  uint       `json:"fullmove"`
	Squares   []string   `json:"squares,omitempty"`
	Kings     *JSONKings `json:"kings,omitempty"`
	Check     []string   `json:"check,omitempty"`
}

// JSONKings holds the king squares of both sides.
type JSONKings struct {
	White string `json:"white"`
	Black string `json:"black"`
}

// JSONOutput is the top-level document written by a batching JSONWriter.
type JSONOutput struct {
	Records []*JSONRecord `json:"records"`
}

// RecordToJSON converts an entry to JSON format.
func RecordToJSON(e Entry, cfg *config.Config) *JSONRecord {
	s := e.State
	record := e.Record(cfg)
	jr := &JSONRecord{
		ID:       PositionID(s),
		OFEN:     record,
		Layout:   InputLayout(record),
		ToMove:   colourName(s.ToMove),
		Castling: s.Castling,
		Halfmove: s.HalfmoveClock,
		Fullmove: s.MoveNumber,
	}
	if s.EnPassant.Valid() {
		jr.EnPassant = s.EnPassant.String()
	}

	if cfg.ShowBoards {
		jr.Squares = gridRows(s)
	}
	if cfg.ShowKings {
		white, black := kingNames(s)
		jr.Kings = &JSONKings{White: white, Black: black}
	}
	if cfg.ShowChecks {
		jr.Check = checkNames(s)
	}
	return jr
}

// OutputRecordJSON writes a single entry as an indented JSON object.
func OutputRecordJSON(w io.Writer, e Entry, cfg *config.Config) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(RecordToJSON(e, cfg))
}
