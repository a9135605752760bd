package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-copilot-api/internal/domain"
	"github.com/vfg2006/marketing-copilot-api/internal/usecases/account"
	"github.com/vfg2006/marketing-copilot-api/pkg/apiErrors"
	"github.com/vfg2006/marketing-copilot-api/pkg/middleware"
)

// AdAccountList lista as contas cadastradas, opcionalmente filtrando por status
func AdAccountList(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := []domain.AdAccountStatus{domain.AdAccountStatusActive}
		if r.URL.Query().Get("include_inactive") == "true" {
			status = append(status, domain.AdAccountStatusInactive)
		}

		accounts, err := service.ListAdAccounts(status)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar contas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// SyncAccounts descobre e cadastra as contas acessíveis pelas credenciais configuradas
func SyncAccounts(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		response, err := service.SyncAccounts(userClaims.UserID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao sincronizar contas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// UpdateAdAccount atualiza apelido e status de uma conta
func UpdateAdAccount(service account.AccountService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta não fornecido", nil)
			return
		}

		var request domain.UpdateAdAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		request.ID = id

		if err := service.UpdateAccount(&request); err != nil {
			var accountErr *account.AccountError
			if errors.As(err, &accountErr) {
				apiErrors.WriteError(w, accountErr.Code, accountErr.Error(), nil)
				return
			}

			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao atualizar conta", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
