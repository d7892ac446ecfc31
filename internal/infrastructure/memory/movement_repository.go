package memory

import (
	"fmt"

	"github.com/ariefstwn/hotelstock-api/internal/domain"
	"github.com/ariefstwn/hotelstock-api/internal/domain/entity"
	"github.com/ariefstwn/hotelstock-api/internal/domain/repository"
)

// MovementRepository libros de movimientos en memoria. Dos listas append-only:
// los descartes no sacan el documento de su libro.
type MovementRepository struct {
	store *Store
	inTx  bool
}

var _ repository.MovementRepository = (*MovementRepository)(nil)

func (r *MovementRepository) ledger(direction string) *[]*entity.MovementDocument {
	if direction == entity.DirectionOut {
		return &r.store.outgoingDocs
	}
	return &r.store.incomingDocs
}

// Append agrega el documento al libro de su dirección.
func (r *MovementRepository) Append(doc *entity.MovementDocument) error {
	defer r.store.wlock(r.inTx)()
	switch doc.Direction {
	case entity.DirectionIn, entity.DirectionOut:
	default:
		return domain.ErrInvalidInput
	}
	*r.ledger(doc.Direction) = append(*r.ledger(doc.Direction), doc)
	return nil
}

// GetByID busca en ambos libros (los ids llevan prefijo por dirección y no colisionan).
func (r *MovementRepository) GetByID(id string) (*entity.MovementDocument, error) {
	defer r.store.rlock(r.inTx)()
	for _, ledger := range [][]*entity.MovementDocument{r.store.incomingDocs, r.store.outgoingDocs} {
		for _, doc := range ledger {
			if doc.ID == id {
				if r.inTx {
					return doc, nil
				}
				return cloneDoc(doc), nil
			}
		}
	}
	return nil, domain.ErrNotFound
}

// List devuelve un libro; direction vacío devuelve entrantes seguidos de salientes.
func (r *MovementRepository) List(direction string) ([]*entity.MovementDocument, error) {
	defer r.store.rlock(r.inTx)()
	var src []*entity.MovementDocument
	switch direction {
	case entity.DirectionIn:
		src = r.store.incomingDocs
	case entity.DirectionOut:
		src = r.store.outgoingDocs
	case "":
		src = append(append([]*entity.MovementDocument{}, r.store.incomingDocs...), r.store.outgoingDocs...)
	default:
		return nil, domain.ErrInvalidInput
	}
	out := make([]*entity.MovementDocument, 0, len(src))
	for _, doc := range src {
		if r.inTx {
			out = append(out, doc)
		} else {
			out = append(out, cloneDoc(doc))
		}
	}
	return out, nil
}

// NextID numera según el tamaño actual del libro (IN-0001 / OUT-0001).
func (r *MovementRepository) NextID(direction string) (string, error) {
	defer r.store.rlock(r.inTx)()
	switch direction {
	case entity.DirectionIn:
		return fmt.Sprintf("IN-%04d", len(r.store.incomingDocs)+1), nil
	case entity.DirectionOut:
		return fmt.Sprintf("OUT-%04d", len(r.store.outgoingDocs)+1), nil
	}
	return "", domain.ErrInvalidInput
}
