package mirror_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/agentes-ledger/internal/mirror"
	"github.com/tu-usuario/agentes-ledger/pkg/logger"
)

// fakeSink acumula lo entregado; opcionalmente falla o bloquea.
type fakeSink struct {
	mu      sync.Mutex
	issues  []mirror.StockIssued
	sales   []mirror.SaleRecorded
	entries []mirror.LedgerEntryRecorded

	fail  error
	block chan struct{} // si no es nil, cada entrega espera aquí
}

func (s *fakeSink) AppendIssue(_ context.Context, e mirror.StockIssued) error {
	if s.block != nil {
		<-s.block
	}
	if s.fail != nil {
		return s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issues = append(s.issues, e)
	return nil
}

func (s *fakeSink) AppendSale(_ context.Context, e mirror.SaleRecorded) error {
	if s.fail != nil {
		return s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, e)
	return nil
}

func (s *fakeSink) AppendEntry(_ context.Context, e mirror.LedgerEntryRecorded) error {
	if s.fail != nil {
		return s.fail
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, e)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestWorker_EntregaLosTresTiposDeEvento(t *testing.T) {
	sink := &fakeSink{}
	w := mirror.NewWorker(sink, testLogger(), 8)
	w.Start()

	w.StockIssued(mirror.StockIssued{AgentName: "Aziz", Quantity: decimal.NewFromInt(100)})
	w.SaleRecorded(mirror.SaleRecorded{AgentName: "Aziz", Date: "2026-03-01"})
	w.LedgerEntryRecorded(mirror.LedgerEntryRecorded{AgentName: "Aziz", Kind: "PAYMENT"})
	w.Close() // drena la cola antes de volver

	require.Len(t, sink.issues, 1)
	require.Len(t, sink.sales, 1)
	require.Len(t, sink.entries, 1)
	assert.Equal(t, "Aziz", sink.issues[0].AgentName)
}

func TestWorker_PublicarNuncaBloquea(t *testing.T) {
	// Sink bloqueado y cola de 1: los eventos excedentes deben descartarse
	// sin que el productor espere.
	sink := &fakeSink{block: make(chan struct{})}
	w := mirror.NewWorker(sink, testLogger(), 1)
	w.Start()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			w.StockIssued(mirror.StockIssued{AgentName: "Aziz"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("la publicación bloqueó con la cola llena")
	}
	close(sink.block)
	w.Close()
}

func TestWorker_ElFalloDelSinkSeTraga(t *testing.T) {
	sink := &fakeSink{fail: errors.New("cuota de API agotada")}
	w := mirror.NewWorker(sink, testLogger(), 8)
	w.Start()

	// Ninguna de estas llamadas devuelve nada que propagar: el fallo del
	// espejo solo es observable en los logs.
	w.SaleRecorded(mirror.SaleRecorded{AgentName: "Aziz"})
	w.Close()

	assert.Empty(t, sink.sales)
}

func TestWorker_PublicarTrasCloseNoEntraEnPanico(t *testing.T) {
	sink := &fakeSink{}
	w := mirror.NewWorker(sink, testLogger(), 4)
	w.Start()
	w.Close()

	// Un productor rezagado tras el cierre: el evento se descarta, sin pánico.
	assert.NotPanics(t, func() {
		w.StockIssued(mirror.StockIssued{AgentName: "Aziz"})
		w.SaleRecorded(mirror.SaleRecorded{AgentName: "Aziz"})
		w.LedgerEntryRecorded(mirror.LedgerEntryRecorded{AgentName: "Aziz"})
	})
	assert.Empty(t, sink.issues)
}

func TestWorker_CloseEsReentrante(t *testing.T) {
	w := mirror.NewWorker(&fakeSink{}, testLogger(), 4)
	w.Start()
	assert.NotPanics(t, func() {
		w.Close()
		w.Close()
	})
}

func TestWorker_TamanoDeColaPorDefecto(t *testing.T) {
	w := mirror.NewWorker(&fakeSink{}, testLogger(), 0)
	w.Start()
	w.StockIssued(mirror.StockIssued{AgentName: "Aziz"})
	w.Close()
}
