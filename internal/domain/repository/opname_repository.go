package repository

import "github.com/ariefstwn/hotelstock-api/internal/domain/entity"

// OpnameRepository puerto de persistencia de sesiones de opname y sus líneas.
// Las líneas se guardan aparte, indexadas por sesión.
type OpnameRepository interface {
	CreateSession(session *entity.StockOpnameSession, lines []*entity.StockOpnameLine) error
	GetSession(id string) (*entity.StockOpnameSession, error)
	UpdateSession(session *entity.StockOpnameSession) error
	ListSessions() ([]*entity.StockOpnameSession, error)
	Lines(sessionID string) ([]*entity.StockOpnameLine, error)
	GetLine(sessionID, lineID string) (*entity.StockOpnameLine, error)
	UpdateLine(line *entity.StockOpnameLine) error
	NextSessionID() (string, error)
}
