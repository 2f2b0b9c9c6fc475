package setting

// CreateSettingRequest represents the input for creating a configuration entry.
type CreateSettingRequest struct {
	Name  string `json:"config_nombre" form:"config_nombre" binding:"required,max=100"`
	Value string `json:"config_valor" form:"config_valor" binding:"required,max=500"`
}

// UpdateSettingRequest carries the new value of a configuration entry.
type UpdateSettingRequest struct {
	Value string `json:"config_valor" form:"config_valor" binding:"required,max=500"`
}
