package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/CastorDigital/api-folha/internal/admin"
	"github.com/CastorDigital/api-folha/internal/assinatura"
	"github.com/CastorDigital/api-folha/internal/auth"
	"github.com/CastorDigital/api-folha/internal/despesa"
	"github.com/CastorDigital/api-folha/internal/equipe"
	"github.com/CastorDigital/api-folha/internal/holerite"
	"github.com/CastorDigital/api-folha/internal/pagamento"
	"github.com/CastorDigital/api-folha/internal/prestador"
	"github.com/CastorDigital/api-folha/internal/projeto"
	"github.com/CastorDigital/api-folha/internal/relatorio"
	"github.com/CastorDigital/api-folha/internal/usuario"
	"github.com/CastorDigital/api-folha/internal/utils"
	"github.com/CastorDigital/api-folha/internal/utils/db"
)

func main() {
	// .env é opcional: em produção as variáveis vêm do ambiente
	_ = godotenv.Load()
	utils.InitLogger()

	conn, err := db.GetDB()
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("Erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := conn.AutoMigrate(
		&usuario.Usuario{},
		&assinatura.Assinatura{},
		&prestador.Prestador{},
		&projeto.Projeto{},
		&equipe.MembroEquipe{},
		&pagamento.Pagamento{},
		&despesa.Despesa{},
		&holerite.Holerite{},
		&auth.RefreshToken{},
	); err != nil {
		utils.Logger.Fatal().Err(err).Msg("Erro no AutoMigrate")
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(conn)
	prestadorHandler := prestador.NewHandler(conn)
	projetoHandler := projeto.NewHandler(conn)
	equipeHandler := equipe.NewHandler(equipe.NewRepository(conn))
	pagamentoHandler := pagamento.NewHandler(pagamento.NewRepository(conn))
	despesaHandler := despesa.NewHandler(despesa.NewRepository(conn))
	holeriteHandler := holerite.NewHandler(holerite.NewRepository(conn))
	relatorioHandler := relatorio.NewHandler(conn)
	assinaturaHandler := assinatura.NewHandler(assinatura.NewRepository(conn))
	adminHandler := admin.NewHandler(conn)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	r.HandleFunc("/auth/refresh", auth.RefreshHTTPHandler(conn)).Methods("POST")
	r.HandleFunc("/auth/logout", auth.LogoutHTTPHandler(conn)).Methods("POST")
	r.HandleFunc("/.well-known/jwks.json", auth.JWKSHandler).Methods("GET")

	// Login delegado a IdP hospedado (requer IDP_JWKS_URL etc.)
	r.Handle("/auth/idp/me", auth.MiddlewareAutenticacaoIdP(http.HandlerFunc(auth.IdPMeHandler))).Methods("GET")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)
	api.Use(utils.RequestLogger)

	// Rotas de usuários
	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	api.HandleFunc("/usuarios/me", usuarioHandler.Me).Methods("GET")
	api.HandleFunc("/usuarios/resumo", usuarioHandler.Resumo).Methods("GET")
	api.HandleFunc("/usuarios/senha", usuarioHandler.AlterarSenha).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/usuarios/{id}/resumo", usuarioHandler.Resumo).Methods("GET")

	// Rotas de prestadores
	api.HandleFunc("/prestadores", prestadorHandler.Criar).Methods("POST")
	api.HandleFunc("/prestadores", prestadorHandler.Listar).Methods("GET")
	api.HandleFunc("/prestadores/{id}", prestadorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/prestadores/{id}", prestadorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/prestadores/{id}", prestadorHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/prestadores/{id}/pagamentos", pagamentoHandler.Historico).Methods("GET")
	api.HandleFunc("/prestadores/{id}/atribuicoes", equipeHandler.ListarPorPrestador).Methods("GET")
	api.HandleFunc("/prestadores/{id}/resumo", relatorioHandler.ResumoPrestador).Methods("GET")

	// Rotas de projetos
	api.HandleFunc("/projetos", projetoHandler.Criar).Methods("POST")
	api.HandleFunc("/projetos", projetoHandler.Listar).Methods("GET")
	api.HandleFunc("/projetos/{id}", projetoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/projetos/{id}", projetoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/projetos/{id}", projetoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/projetos/{id}/resumo", relatorioHandler.ResumoProjeto).Methods("GET")

	// Rotas de equipe
	api.HandleFunc("/equipe", equipeHandler.ListarDoUsuario).Methods("GET")
	api.HandleFunc("/projetos/{id}/equipe", equipeHandler.Create).Methods("POST")
	api.HandleFunc("/projetos/{id}/equipe", equipeHandler.List).Methods("GET")
	api.HandleFunc("/equipe/{mid}", equipeHandler.Get).Methods("GET")
	api.HandleFunc("/equipe/{mid}", equipeHandler.Update).Methods("PUT")
	api.HandleFunc("/equipe/{mid}/sincronizar-status", equipeHandler.SincronizarStatus).Methods("PATCH")
	api.HandleFunc("/equipe/{mid}", equipeHandler.Delete).Methods("DELETE")

	// Rotas de pagamentos
	api.HandleFunc("/projetos/{id}/pagamentos", pagamentoHandler.Criar).Methods("POST")
	api.HandleFunc("/projetos/{id}/pagamentos", pagamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/pagamentos", pagamentoHandler.Todos).Methods("GET")
	api.HandleFunc("/pagamentos/{pid}", pagamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pagamentos/{pid}", pagamentoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/pagamentos/{pid}", pagamentoHandler.Deletar).Methods("DELETE")

	// Rotas de despesas
	api.HandleFunc("/projetos/{id}/despesas", despesaHandler.Criar).Methods("POST")
	api.HandleFunc("/projetos/{id}/despesas", despesaHandler.Listar).Methods("GET")
	api.HandleFunc("/despesas/{did}", despesaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/despesas/{did}", despesaHandler.Deletar).Methods("DELETE")

	// Rotas de holerites
	api.HandleFunc("/projetos/{id}/prestadores/{cid}/holerites", holeriteHandler.Emitir).Methods("POST")
	api.HandleFunc("/holerites", holeriteHandler.Listar).Methods("GET")
	api.HandleFunc("/holerites/{hid}", holeriteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/holerites/{hid}", holeriteHandler.Deletar).Methods("DELETE")

	// Rotas de relatórios
	api.HandleFunc("/relatorios/prestadores", relatorioHandler.Prestadores).Methods("GET")
	api.HandleFunc("/relatorios/projetos", relatorioHandler.Projetos).Methods("GET")
	api.HandleFunc("/relatorios/agencia", relatorioHandler.Agencia).Methods("GET")

	// Rota de assinatura
	api.HandleFunc("/assinatura", assinaturaHandler.Minha).Methods("GET")

	// Console administrativo
	adm := r.PathPrefix("/admin").Subrouter()
	adm.Use(auth.MiddlewareAutenticacao)
	adm.Use(auth.RequireAdmin)
	adm.Use(utils.RequestLogger)
	adm.HandleFunc("/usuarios", adminHandler.ListarUsuarios).Methods("GET")
	adm.HandleFunc("/usuarios/{id}/assinatura", adminHandler.AlterarAssinatura).Methods("PATCH")
	adm.HandleFunc("/usuarios/{id}/reset-senha", adminHandler.ResetarSenha).Methods("POST")
	adm.HandleFunc("/resumo", adminHandler.Resumo).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + porta)
	utils.Logger.Fatal().Err(http.ListenAndServe(":"+porta, c.Handler(r))).Msg("Servidor encerrado")
}
