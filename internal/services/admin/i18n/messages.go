package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys used by the admin UI.
const (
	KeyAppName          = "app.name"
	KeyUsersTitle       = "users.title"
	KeyUsersEmpty       = "users.empty"
	KeyUsersUnnamed     = "users.unnamed"
	KeyUsersPosts       = "users.posts"
	KeyUsersComments    = "users.comments"
	KeyUsersDelete      = "users.delete"
	KeyUsersDeleteLabel = "users.delete_label"
	KeyUsersLoading     = "users.loading"
	KeyUsersUnavailable = "users.unavailable"
	KeyUsersDeleted     = "users.deleted"
	KeyUsersDeleteError = "users.delete_failed"
	KeyUsersIDRequired  = "users.id_required"
	KeyToastDismiss     = "toast.dismiss"
	KeyForbidden        = "error.forbidden"
)

var catalog = map[string]map[string]string{
	"en": {
		KeyAppName:          "Userboard",
		KeyUsersTitle:       "Users",
		KeyUsersEmpty:       "No users found. Create your first user!",
		KeyUsersUnnamed:     "Unnamed User",
		KeyUsersPosts:       "Posts:",
		KeyUsersComments:    "Comments:",
		KeyUsersDelete:      "Delete",
		KeyUsersDeleteLabel: "Delete %s",
		KeyUsersLoading:     "Loading users...",
		KeyUsersUnavailable: "Users service unavailable",
		KeyUsersDeleted:     "User deleted successfully",
		KeyUsersDeleteError: "Failed to delete user",
		KeyUsersIDRequired:  "Id is required",
		KeyToastDismiss:     "Dismiss",
		KeyForbidden:        "Request origin not allowed",
	},
	"pt-BR": {
		KeyAppName:          "Userboard",
		KeyUsersTitle:       "Usuários",
		KeyUsersEmpty:       "Nenhum usuário encontrado. Crie o seu primeiro usuário!",
		KeyUsersUnnamed:     "Usuário sem nome",
		KeyUsersPosts:       "Posts:",
		KeyUsersComments:    "Comentários:",
		KeyUsersDelete:      "Excluir",
		KeyUsersDeleteLabel: "Excluir %s",
		KeyUsersLoading:     "Carregando usuários...",
		KeyUsersUnavailable: "Serviço de usuários indisponível",
		KeyUsersDeleted:     "Usuário excluído com sucesso",
		KeyUsersDeleteError: "Falha ao excluir usuário",
		KeyUsersIDRequired:  "O id é obrigatório",
		KeyToastDismiss:     "Fechar",
		KeyForbidden:        "Origem da requisição não permitida",
	},
}

func init() {
	for locale, messages := range catalog {
		tag := language.MustParse(locale)
		for key, text := range messages {
			_ = message.SetString(tag, key, text)
		}
	}
}
