package memory

import (
	"fmt"

	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// OpnameRepository sesiones de opname en memoria; las líneas se indexan por sesión.
type OpnameRepository struct {
	store *Store
	inTx  bool
}

var _ repository.OpnameRepository = (*OpnameRepository)(nil)

// CreateSession guarda la sesión junto con sus líneas iniciales.
func (r *OpnameRepository) CreateSession(session *entity.StockOpnameSession, lines []*entity.StockOpnameLine) error {
	defer r.store.wlock(r.inTx)()
	for _, existing := range r.store.opnameSessions {
		if existing.ID == session.ID {
			return domain.ErrConflict
		}
	}
	r.store.opnameSessions = append(r.store.opnameSessions, session)
	r.store.opnameLines[session.ID] = lines
	return nil
}

// GetSession devuelve la sesión o ErrNotFound.
func (r *OpnameRepository) GetSession(id string) (*entity.StockOpnameSession, error) {
	defer r.store.rlock(r.inTx)()
	for _, s := range r.store.opnameSessions {
		if s.ID == id {
			if r.inTx {
				return s, nil
			}
			return cloneSession(s), nil
		}
	}
	return nil, domain.ErrNotFound
}

// UpdateSession reemplaza la sesión almacenada.
func (r *OpnameRepository) UpdateSession(session *entity.StockOpnameSession) error {
	defer r.store.wlock(r.inTx)()
	for i, s := range r.store.opnameSessions {
		if s.ID == session.ID {
			r.store.opnameSessions[i] = session
			return nil
		}
	}
	return domain.ErrNotFound
}

// ListSessions devuelve todas las sesiones en orden de creación.
func (r *OpnameRepository) ListSessions() ([]*entity.StockOpnameSession, error) {
	defer r.store.rlock(r.inTx)()
	out := make([]*entity.StockOpnameSession, 0, len(r.store.opnameSessions))
	for _, s := range r.store.opnameSessions {
		if r.inTx {
			out = append(out, s)
		} else {
			out = append(out, cloneSession(s))
		}
	}
	return out, nil
}

// Lines devuelve las líneas de una sesión.
func (r *OpnameRepository) Lines(sessionID string) ([]*entity.StockOpnameLine, error) {
	defer r.store.rlock(r.inTx)()
	lines, ok := r.store.opnameLines[sessionID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := make([]*entity.StockOpnameLine, 0, len(lines))
	for _, l := range lines {
		if r.inTx {
			out = append(out, l)
		} else {
			out = append(out, cloneLine(l))
		}
	}
	return out, nil
}

// GetLine devuelve una línea por sesión e id.
func (r *OpnameRepository) GetLine(sessionID, lineID string) (*entity.StockOpnameLine, error) {
	defer r.store.rlock(r.inTx)()
	for _, l := range r.store.opnameLines[sessionID] {
		if l.ID == lineID {
			if r.inTx {
				return l, nil
			}
			return cloneLine(l), nil
		}
	}
	return nil, domain.ErrNotFound
}

// UpdateLine reemplaza la línea almacenada.
func (r *OpnameRepository) UpdateLine(line *entity.StockOpnameLine) error {
	defer r.store.wlock(r.inTx)()
	lines := r.store.opnameLines[line.SessionID]
	for i, l := range lines {
		if l.ID == line.ID {
			lines[i] = line
			return nil
		}
	}
	return domain.ErrNotFound
}

// NextSessionID genera el siguiente id de sesión (OP-001).
func (r *OpnameRepository) NextSessionID() (string, error) {
	defer r.store.wlock(r.inTx)()
	id := fmt.Sprintf("OP-%03d", r.store.nextOpname)
	r.store.nextOpname++
	return id, nil
}
