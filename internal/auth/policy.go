package auth

import "shoe-tracker/internal/models"

// Operation — закрытый перечень действий, проверяемых политикой доступа.
type Operation string

const (
	OpRecordUnit    Operation = "record_unit"
	OpViewUnits     Operation = "view_units"
	OpCreateModel   Operation = "create_model"
	OpEditModel     Operation = "edit_model"
	OpDeleteModel   Operation = "delete_model"
	OpViewModels    Operation = "view_models"
	OpViewReports   Operation = "view_reports"
	OpCreateAccount Operation = "create_account"
	OpListAccounts  Operation = "list_accounts"
	OpUpdateRole    Operation = "update_role"
	OpDeleteAccount Operation = "delete_account"
)

// Единственная таблица прав. Проверки ролей по хендлерам не размазываем.
var policy = map[Operation][]models.Role{
	OpRecordUnit:    {models.RoleAdmin, models.RoleProdEng},
	OpViewUnits:     {models.RoleAdmin, models.RoleProdEng, models.RoleOther},
	OpCreateModel:   {models.RoleAdmin, models.RoleProdEng},
	OpEditModel:     {models.RoleAdmin, models.RoleProdEng},
	OpDeleteModel:   {models.RoleAdmin, models.RoleProdEng},
	OpViewModels:    {models.RoleAdmin, models.RoleProdEng, models.RoleOther},
	OpViewReports:   {models.RoleAdmin, models.RoleProdEng},
	OpCreateAccount: {models.RoleAdmin},
	OpListAccounts:  {models.RoleAdmin},
	OpUpdateRole:    {models.RoleAdmin},
	OpDeleteAccount: {models.RoleAdmin},
}

// Allowed отвечает, может ли роль выполнить операцию.
// Неизвестная роль или операция — всегда отказ.
func Allowed(role models.Role, op Operation) bool {
	for _, r := range policy[op] {
		if r == role {
			return true
		}
	}
	return false
}
