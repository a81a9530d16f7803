package storage

import (
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

const backupInfix = ".backup."

// createBackup toma un snapshot del documento primario actual bajo una clave
// derivada (ruta base + timestamp). Best effort: un backup fallido no impide
// la escritura que lo motivó.
func (s *Store) createBackup() {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return // primer arranque o primario ilegible: nada que respaldar
	}
	name := s.path + backupInfix + strconv.FormatInt(s.now().UnixMilli(), 10)
	if err := afero.WriteFile(s.fs, name, data, 0o644); err != nil {
		s.log.Warn().Err(err).Str("backup", name).Msg("no se pudo crear el backup")
	}
}

// restoreFromBackup intenta decodificar los backups del más reciente al más
// antiguo y devuelve el primero legible, o nil si ninguno sirve.
func (s *Store) restoreFromBackup() *Document {
	for _, name := range s.listBackups() {
		data, err := afero.ReadFile(s.fs, name)
		if err != nil {
			continue
		}
		doc, err := decodeDocument(data)
		if err != nil {
			continue
		}
		s.log.Info().Str("backup", name).Msg("documento restaurado desde backup")
		return doc
	}
	return nil
}

// pruneBackups conserva los `keep` snapshots más recientes y elimina el
// resto. Con keep=0 libera todo el espacio de backups (remediación ante una
// escritura fallida por falta de espacio).
func (s *Store) pruneBackups(keep int) {
	names := s.listBackups()
	if len(names) <= keep {
		return
	}
	for _, name := range names[keep:] {
		if err := s.fs.Remove(name); err != nil {
			s.log.Warn().Err(err).Str("backup", name).Msg("no se pudo eliminar el backup")
		}
	}
}

// listBackups devuelve las rutas de backup del primario, más recientes
// primero (el timestamp va como sufijo numérico del nombre).
func (s *Store) listBackups() []string {
	dir := filepath.Dir(s.path)
	base := filepath.Base(s.path) + backupInfix

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil
	}
	type backup struct {
		name string
		ts   int64
	}
	var found []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), base) {
			continue
		}
		ts, err := strconv.ParseInt(strings.TrimPrefix(e.Name(), base), 10, 64)
		if err != nil {
			continue
		}
		found = append(found, backup{name: filepath.Join(dir, e.Name()), ts: ts})
	}
	sort.Slice(found, func(i, j int) bool { return found[i].ts > found[j].ts })

	names := make([]string, 0, len(found))
	for _, b := range found {
		names = append(names, b.name)
	}
	return names
}
