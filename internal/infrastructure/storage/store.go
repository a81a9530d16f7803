// Package storage implementa la persistencia de la aplicación: un único
// documento JSON en disco (el análogo del storage local del navegador en la
// versión original), cargado al arrancar y re-escrito completo tras cada
// mutación. Las escrituras se serializan con un mutex, de modo que dos
// mutaciones concurrentes nunca se pisan (la última no descarta a la primera:
// ambas parten del documento ya actualizado).
package storage

import (
	"encoding/json"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"

	"github.com/jhoicas/inventario-lite/internal/domain"
	"github.com/jhoicas/inventario-lite/pkg/logger"
)

// Options parámetros de apertura del store.
type Options struct {
	Fs      afero.Fs      // OsFs en producción, MemMapFs en tests
	Path    string        // ruta del documento principal
	Backups int           // snapshots recientes a conservar (default 3)
	Latency time.Duration // latencia simulada por operación (default 0)
	Logger  *logger.Logger
	Seed    []byte           // dataset inicial; nil usa el seed embebido
	Now     func() time.Time // reloj inyectable para tests
}

// Store mantiene el documento vivo en memoria y lo persiste completo tras
// cada mutación. Una falla de persistencia no invalida el estado en memoria:
// la sesión actual sigue operando y el error se reporta como StorageError.
type Store struct {
	fs      afero.Fs
	path    string
	backups int
	latency time.Duration
	log     *logger.Logger
	now     func() time.Time
	seed    []byte

	mu  sync.Mutex
	doc *Document
}

// Open carga el documento persistido; si no existe (primer arranque) parte
// del seed. Un documento primario ilegible se recupera desde el backup más
// reciente que parsee, y como último recurso desde el seed.
func Open(opts Options) (*Store, error) {
	s := &Store{
		fs:      opts.Fs,
		path:    opts.Path,
		backups: opts.Backups,
		latency: opts.Latency,
		log:     opts.Logger,
		now:     opts.Now,
		seed:    opts.Seed,
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.path == "" {
		s.path = "data/inventario.json"
	}
	if s.backups <= 0 {
		s.backups = 3
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.seed == nil {
		s.seed = defaultSeed
	}

	doc, fresh, err := s.load()
	if err != nil {
		return nil, err
	}
	s.doc = doc
	if fresh {
		// Primer arranque: persistir el seed para que el siguiente Load no
		// vuelva a partir de cero. Best effort.
		if err := s.save(doc); err != nil {
			s.log.Warn().Err(err).Msg("no se pudo persistir el documento inicial")
		}
	}
	return s, nil
}

// load resuelve el documento de arranque: primario → backup → seed.
func (s *Store) load() (*Document, bool, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err == nil {
		doc, derr := decodeDocument(data)
		if derr == nil {
			return doc, false, nil
		}
		s.log.Warn().Err(derr).Str("path", s.path).Msg("documento primario corrupto, intentando backup")
		if doc := s.restoreFromBackup(); doc != nil {
			return doc, true, nil
		}
	}

	doc, derr := decodeDocument(s.seed)
	if derr != nil {
		return nil, false, derr
	}
	return doc, true, nil
}

// View ejecuta fn con el documento vivo bajo el lock. fn no debe retener ni
// mutar el documento; los repositorios copian lo que devuelven.
func (s *Store) View(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait()
	return fn(s.doc)
}

// Mutate ejecuta fn sobre una copia del documento y, si fn no falla,
// persiste la copia y la convierte en el documento vivo. Es la frontera
// transaccional: una operación compuesta (movimiento + ajuste de producto)
// queda escrita completa o no queda escrita.
//
// Si la persistencia falla tras la remediación, el cambio se conserva en
// memoria y se devuelve un StorageError para que el caller lo reporte.
func (s *Store) Mutate(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wait()

	work := s.doc.clone()
	if err := fn(work); err != nil {
		return err
	}
	err := s.save(work)
	s.doc = work
	return err
}

// save serializa y escribe el documento completo. Antes de escribir toma un
// snapshot del archivo actual; si la escritura falla, poda backups antiguos
// y reintenta una única vez.
func (s *Store) save(doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "encode", Err: err}
	}

	s.createBackup()

	if err := s.writeFile(data); err != nil {
		s.log.Warn().Err(err).Msg("escritura fallida, podando backups y reintentando")
		s.pruneBackups(0)
		if err2 := s.writeFile(data); err2 != nil {
			return &domain.StorageError{Op: "save", Err: err2}
		}
	}
	s.pruneBackups(s.backups)
	return nil
}

func (s *Store) writeFile(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "." && dir != "" {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return afero.WriteFile(s.fs, s.path, data, 0o644)
}

// wait aplica la latencia simulada configurada (si la hay).
func (s *Store) wait() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

// Export devuelve el documento completo serializado, para respaldo externo.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return json.MarshalIndent(s.doc, "", "  ")
}

// Import reemplaza el documento completo por data (validándolo primero).
func (s *Store) Import(data []byte) error {
	doc, err := decodeDocument(data)
	if err != nil {
		return domain.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.save(doc)
	s.doc = doc
	return err
}

// Reset vuelve al seed inicial.
func (s *Store) Reset() error {
	doc, err := decodeDocument(s.seed)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	err = s.save(doc)
	s.doc = doc
	return err
}
