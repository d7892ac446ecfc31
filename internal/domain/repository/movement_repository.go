package repository

import "github.com/ariefstwn/hotelstock-api/internal/domain/entity"

// MovementRepository puerto de persistencia de los libros de movimientos.
// Cada documento pertenece exclusivamente a su libro direccional; los
// descartados permanecen en el libro con status DISCARDED.
type MovementRepository interface {
	Append(doc *entity.MovementDocument) error
	GetByID(id string) (*entity.MovementDocument, error)
	// List devuelve los documentos de un libro; direction vacío devuelve ambos.
	List(direction string) ([]*entity.MovementDocument, error)
	// NextID genera el siguiente id del libro (IN-0001 / OUT-0001).
	NextID(direction string) (string, error)
}
