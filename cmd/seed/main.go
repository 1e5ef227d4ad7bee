// Seed inicial: claves de configuración por defecto y cuenta admin.
// Uso:
//
//	go run ./cmd/seed -admin-email admin@tienda.com -admin-password <pass>
//
// Si la clave MAINTENANCE_MODE está activa en la base, el seed se niega a
// correr salvo que se pase -force (protege contra re-seedear producción
// durante una ventana de mantenimiento).
package main

import (
	"context"
	"flag"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/tienda-api/internal/domain/entity"
	"github.com/jhoicas/tienda-api/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-api/pkg/config"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

func main() {
	adminEmail := flag.String("admin-email", "", "email de la cuenta admin a crear")
	adminPassword := flag.String("admin-password", "", "password de la cuenta admin")
	force := flag.Bool("force", false, "correr aunque MAINTENANCE_MODE esté activo")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	configRepo := postgres.NewConfiguracionRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)

	fila, err := configRepo.GetByClave(entity.ClaveMaintenanceMode)
	if err != nil {
		log.Fatal().Err(err).Msg("leer MAINTENANCE_MODE")
	}
	if fila != nil && (fila.Valor == "true" || fila.Valor == "1") && !*force {
		log.Fatal().Msg("MAINTENANCE_MODE activo: usá -force para seedear igual")
	}

	defaults := map[string]string{
		entity.ClaveModoProximamente:  "false",
		entity.ClaveTextoProximamente: "Estamos preparando algo nuevo",
		entity.ClaveNombreTienda:      cfg.App.Name,
		entity.ClaveWhatsapp:          "",
		entity.ClaveInstagram:         "",
		entity.ClaveEmail:             "",
		entity.ClaveMaintenanceMode:   "false",
	}
	for clave, valor := range defaults {
		existente, err := configRepo.GetByClave(clave)
		if err != nil {
			log.Fatal().Err(err).Str("clave", clave).Msg("leer configuración")
		}
		if existente != nil {
			continue // nunca pisar valores ya configurados
		}
		if err := configRepo.Upsert(clave, valor); err != nil {
			log.Fatal().Err(err).Str("clave", clave).Msg("sembrar configuración")
		}
		log.Info().Str("clave", clave).Msg("clave de configuración sembrada")
	}

	if *adminEmail == "" || *adminPassword == "" {
		log.Info().Msg("sin -admin-email/-admin-password: no se crea cuenta admin")
		return
	}

	existente, err := usuarioRepo.GetByEmail(*adminEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("buscar admin existente")
	}
	if existente != nil {
		log.Info().Str("email", *adminEmail).Msg("la cuenta admin ya existe, nada que hacer")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hashear password")
	}
	now := time.Now()
	admin := &entity.Usuario{
		ID:              uuid.New().String(),
		Nombre:          "Administrador",
		Email:           *adminEmail,
		PasswordHash:    string(hash),
		Rol:             entity.RolAdmin,
		EstadoMayorista: entity.MayoristaNinguno,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := usuarioRepo.Create(admin); err != nil {
		log.Fatal().Err(err).Msg("crear cuenta admin")
	}
	log.Info().Str("email", *adminEmail).Msg("cuenta admin creada")
}
