// Package migrations embute os arquivos SQL de migração aplicados na subida
// da aplicação via golang-migrate com a source iofs.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Version é a versão alvo do schema; incremente junto com novas migrações
const Version = 1
