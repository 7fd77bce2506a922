package events

import "time"

const EstablecimientoLifecycleTopic = "ciec.establecimiento.lifecycle.v1"

const (
	EstablecimientoCreated = "establecimiento_created"
	EstablecimientoDeleted = "establecimiento_deleted"
)

type EstablecimientoLifecycleEvent struct {
	EventType         string    `json:"event_type"`
	IDEstablecimiento string    `json:"id_establecimiento"`
	RIFCompania       string    `json:"rif_compania"`
	OccurredAt        time.Time `json:"occurred_at"`
}
