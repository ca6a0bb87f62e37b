package mirror

import (
	"context"
	"sync"
	"time"

	"github.com/tu-usuario/agentes-ledger/pkg/logger"
)

// Sink entrega un evento al destino externo (la hoja de cálculo espejo).
type Sink interface {
	AppendIssue(ctx context.Context, e StockIssued) error
	AppendSale(ctx context.Context, e SaleRecorded) error
	AppendEntry(ctx context.Context, e LedgerEntryRecorded) error
}

// envelope envuelve exactamente uno de los tres eventos.
type envelope struct {
	issue *StockIssued
	sale  *SaleRecorded
	entry *LedgerEntryRecorded
}

// Worker consume una cola en memoria y replica cada evento en el Sink desde
// una goroutine de fondo. La publicación nunca bloquea: con la cola llena el
// evento se descarta con un warning, y un fallo del Sink se registra y se
// traga — jamás llega al que hizo la escritura primaria.
type Worker struct {
	sink    Sink
	log     *logger.Logger
	queue   chan envelope
	done    chan struct{}
	timeout time.Duration

	mu     sync.Mutex // protege queue frente a Close concurrente
	closed bool
}

var _ Notifier = (*Worker)(nil)

// NewWorker construye el worker con una cola de queueSize eventos.
func NewWorker(sink Sink, log *logger.Logger, queueSize int) *Worker {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Worker{
		sink:    sink,
		log:     log,
		queue:   make(chan envelope, queueSize),
		done:    make(chan struct{}),
		timeout: 30 * time.Second,
	}
}

// Start lanza la goroutine consumidora.
func (w *Worker) Start() {
	go w.run()
}

// Close deja de aceptar eventos y espera a que la cola se drene. Es seguro
// frente a productores concurrentes: lo publicado después se descarta.
func (w *Worker) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		<-w.done
		return
	}
	w.closed = true
	close(w.queue)
	w.mu.Unlock()
	<-w.done
}

// StockIssued encola la notificación de una entrega.
func (w *Worker) StockIssued(e StockIssued) {
	w.publish(envelope{issue: &e})
}

// SaleRecorded encola la notificación de una venta.
func (w *Worker) SaleRecorded(e SaleRecorded) {
	w.publish(envelope{sale: &e})
}

// LedgerEntryRecorded encola la notificación de un movimiento de caja.
func (w *Worker) LedgerEntryRecorded(e LedgerEntryRecorded) {
	w.publish(envelope{entry: &e})
}

func (w *Worker) publish(ev envelope) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		w.log.Warn().Msg("espejo: worker cerrado, evento descartado")
		return
	}
	select {
	case w.queue <- ev:
	default:
		// Cola llena: el contrato permite perder eventos, no bloquear al productor.
		w.log.Warn().Msg("espejo: cola llena, evento descartado")
	}
}

func (w *Worker) run() {
	defer close(w.done)
	for ev := range w.queue {
		w.deliver(ev)
	}
}

func (w *Worker) deliver(ev envelope) {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	var err error
	var kind string
	switch {
	case ev.issue != nil:
		kind = "issue"
		err = w.sink.AppendIssue(ctx, *ev.issue)
	case ev.sale != nil:
		kind = "sale"
		err = w.sink.AppendSale(ctx, *ev.sale)
	case ev.entry != nil:
		kind = "entry"
		err = w.sink.AppendEntry(ctx, *ev.entry)
	}
	if err != nil {
		w.log.Warn().Err(err).Str("event", kind).Msg("espejo: réplica fallida, evento abandonado")
	}
}
