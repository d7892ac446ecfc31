package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dirección de un documento de movimiento. Cada documento pertenece a un solo
// libro (entrante o saliente) y nunca cambia de libro.
const (
	DirectionIn  = "IN"
	DirectionOut = "OUT"
)

// Estados del documento. DISCARDED es unidireccional: solo revert puede
// devolver un documento a un snapshot anterior al descarte.
const (
	MovementStatusPosted    = "POSTED"
	MovementStatusDiscarded = "DISCARDED"
)

// Origen de documentos entrantes.
const (
	SourceTypeWithPO           = "WITH_PO"
	SourceTypeAdjustment       = "ADJUSTMENT"
	SourceTypeOpnameAdjustment = "OPNAME_ADJUSTMENT"
)

// Destino de documentos salientes.
const (
	DestTypeDepartment       = "DEPARTMENT"
	DestTypeAdjustment       = "ADJUSTMENT"
	DestTypeOpnameAdjustment = "OPNAME_ADJUSTMENT"
)

// Acciones registradas en el historial del documento.
const (
	MovementActionPosted    = "Posted"
	MovementActionModified  = "Modified"
	MovementActionDiscarded = "Discarded"
	MovementActionReverted  = "Reverted"
)

// Attachment metadatos de un archivo adjunto (BAST, prueba de entrega).
// Solo se guardan metadatos; los binarios quedan fuera de alcance.
type Attachment struct {
	Name       string
	Size       int64
	Type       string
	UploadedAt time.Time
}

// Clone devuelve una copia por valor.
func (a *Attachment) Clone() *Attachment {
	if a == nil {
		return nil
	}
	c := *a
	return &c
}

// MovementLine una línea del documento: referencia a un ítem (id + tipo) y cantidad.
type MovementLine struct {
	ItemID   string
	ItemName string
	ItemType string // ROOM | LAUNDRY
	UOM      string
	Qty      decimal.Decimal
}

// MovementSnapshot copia por valor del documento sin su historial.
// Reemplaza el deep-clone JSON del prototipo original por una copia explícita.
type MovementSnapshot struct {
	ID                      string
	Direction               string
	Date                    time.Time
	Property                string
	SourceType              string
	PONumber                string
	BastAttachment          *Attachment
	DeliveryProofAttachment *Attachment
	DestType                string
	DestRef                 string
	Note                    string
	Lines                   []MovementLine
	Status                  string
}

// MovementHistoryEntry una entrada del historial: acción + snapshot del documento
// tal como quedó después de esa acción.
type MovementHistoryEntry struct {
	TS       time.Time
	Action   string
	Detail   string
	Snapshot MovementSnapshot
}

// MovementDocument documento de movimiento de stock. Direction discrimina los
// campos propios de cada lado: SourceType/PONumber/adjuntos para IN,
// DestType/DestRef para OUT. El historial acumula un snapshot por cada acción
// que cambia estado (Posted, Modified, Discarded, Reverted).
type MovementDocument struct {
	ID                      string
	Direction               string // IN | OUT
	Date                    time.Time
	Property                string
	SourceType              string // solo IN
	PONumber                string // solo IN
	BastAttachment          *Attachment
	DeliveryProofAttachment *Attachment
	DestType                string // solo OUT
	DestRef                 string // solo OUT
	Note                    string
	Lines                   []MovementLine
	Status                  string // POSTED | DISCARDED
	History                 []MovementHistoryEntry
}

// Snapshot copia el documento por valor excluyendo History.
func (d *MovementDocument) Snapshot() MovementSnapshot {
	lines := make([]MovementLine, len(d.Lines))
	copy(lines, d.Lines)
	return MovementSnapshot{
		ID:                      d.ID,
		Direction:               d.Direction,
		Date:                    d.Date,
		Property:                d.Property,
		SourceType:              d.SourceType,
		PONumber:                d.PONumber,
		BastAttachment:          d.BastAttachment.Clone(),
		DeliveryProofAttachment: d.DeliveryProofAttachment.Clone(),
		DestType:                d.DestType,
		DestRef:                 d.DestRef,
		Note:                    d.Note,
		Lines:                   lines,
		Status:                  d.Status,
	}
}

// Restore reemplaza todos los campos del documento (excepto History) con los
// del snapshot.
func (d *MovementDocument) Restore(s MovementSnapshot) {
	lines := make([]MovementLine, len(s.Lines))
	copy(lines, s.Lines)
	d.ID = s.ID
	d.Direction = s.Direction
	d.Date = s.Date
	d.Property = s.Property
	d.SourceType = s.SourceType
	d.PONumber = s.PONumber
	d.BastAttachment = s.BastAttachment.Clone()
	d.DeliveryProofAttachment = s.DeliveryProofAttachment.Clone()
	d.DestType = s.DestType
	d.DestRef = s.DestRef
	d.Note = s.Note
	d.Lines = lines
	d.Status = s.Status
}

// AppendHistory agrega una entrada con snapshot del estado actual del documento.
func (d *MovementDocument) AppendHistory(now time.Time, action, detail string) {
	d.History = append(d.History, MovementHistoryEntry{
		TS:       now,
		Action:   action,
		Detail:   detail,
		Snapshot: d.Snapshot(),
	})
}
