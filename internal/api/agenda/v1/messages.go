// Package agendav1 — контракт сервиса агенды: сообщения и gRPC-дескриптор.
// Сообщения передаются в JSON (см. codec.go), имена полей совпадают с
// теми, что использует веб-клиент.
package agendav1

// Даты везде в формате YYYY-MM-DD, идентификаторы — UUID строкой.

type UserRequest struct {
	UserID string `json:"user_id"`
}

type DeleteRequest struct {
	UserID string `json:"user_id"`
	ID     string `json:"id"`
}

type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

// ---- события ----

type Event struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Date       string `json:"data_evento"`
	Type       string `json:"tipo_evento"`
	ClientName string `json:"cliente_nome"`
	City       string `json:"cidade"`
	Status     string `json:"status"`
	Notes      string `json:"observacoes"`
	Origin     string `json:"origem"`
	ImportID   string `json:"importacao_id,omitempty"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

type CreateEventRequest struct {
	UserID     string `json:"user_id"`
	Date       string `json:"data_evento" validate:"required"`
	Type       string `json:"tipo_evento" validate:"max=128"`
	ClientName string `json:"cliente_nome" validate:"required,max=255"`
	City       string `json:"cidade" validate:"max=255"`
	Status     string `json:"status" validate:"omitempty,oneof=pendente confirmado concluido cancelado"`
	Notes      string `json:"observacoes"`
}

// UpdateEventRequest: nil-поля не меняются.
type UpdateEventRequest struct {
	UserID     string  `json:"user_id"`
	ID         string  `json:"id"`
	Date       *string `json:"data_evento,omitempty"`
	Type       *string `json:"tipo_evento,omitempty" validate:"omitempty,max=128"`
	ClientName *string `json:"cliente_nome,omitempty" validate:"omitempty,min=1,max=255"`
	City       *string `json:"cidade,omitempty" validate:"omitempty,max=255"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pendente confirmado concluido cancelado"`
	Notes      *string `json:"observacoes,omitempty"`
}

type ListEventsByDateRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"data"`
}

// ListEventsRequest: если заданы year и month, возвращаются события месяца,
// иначе постраничный список всех событий.
type ListEventsRequest struct {
	UserID   string `json:"user_id"`
	Year     int    `json:"ano,omitempty"`
	Month    int    `json:"mes,omitempty"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

type ListEventsResponse struct {
	Events   []*Event `json:"eventos"`
	Total    int64    `json:"total"`
	Page     int      `json:"page,omitempty"`
	PageSize int      `json:"page_size,omitempty"`
	HasNext  bool     `json:"has_next"`
}

type ClearEventsRequest struct {
	UserID        string `json:"user_id"`
	IncludeManual bool   `json:"incluir_manuais"`
}

// ---- блокировки ----

type BlockedDate struct {
	ID     string `json:"id"`
	Date   string `json:"data"`
	Reason string `json:"motivo"`
	Source string `json:"origem,omitempty"`
}

type BlockDateRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"data"`
	Reason string `json:"motivo" validate:"max=255"`
}

// UnblockDateRequest: по id или по дате.
type UnblockDateRequest struct {
	UserID string `json:"user_id"`
	ID     string `json:"id,omitempty"`
	Date   string `json:"data,omitempty"`
}

type ListBlockedDatesResponse struct {
	Dates []*BlockedDate `json:"datas"`
}

type BlockedPeriod struct {
	ID        string `json:"id"`
	StartDate string `json:"data_inicio"`
	EndDate   string `json:"data_fim"`
	Reason    string `json:"motivo"`
}

type AddBlockedPeriodRequest struct {
	UserID    string `json:"user_id"`
	StartDate string `json:"data_inicio"`
	EndDate   string `json:"data_fim"`
	Reason    string `json:"motivo" validate:"max=255"`
}

type ListBlockedPeriodsResponse struct {
	Periods []*BlockedPeriod `json:"periodos"`
}

// ---- праздники ----

type Holiday struct {
	ID   string `json:"id,omitempty"`
	Date string `json:"data"`
	Name string `json:"nome"`
	Kind string `json:"tipo"`
}

type AddHolidayRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"data"`
	Name   string `json:"nome" validate:"required,max=255"`
}

type ListHolidaysRequest struct {
	UserID string `json:"user_id"`
	// 0 — текущий год.
	Year int `json:"ano,omitempty"`
}

type ListHolidaysResponse struct {
	Personal []*Holiday `json:"personalizados"`
	National []*Holiday `json:"nacionais"`
}

// ---- настройки ----

type AgendaConfig struct {
	MaxPerDay       int    `json:"eventos_max_por_dia"`
	WarningMode     string `json:"modo_aviso"`
	Active          bool   `json:"agenda_ativa"`
	BlockedWeekdays []int  `json:"dias_semana_bloqueados"`
	MassRulesActive bool   `json:"regras_massa_ativas"`
	BlockHolidays   bool   `json:"bloquear_feriados"`
	ParityRule      string `json:"regra_par_impar"`
	WeekRule        string `json:"regra_semanal"`
	WeekRuleStart   string `json:"regra_semanal_inicio,omitempty"`
}

// UpdateAgendaConfigRequest — команда изменения настроек: nil-поля не
// трогаются, всё проверяется до единственной записи.
type UpdateAgendaConfigRequest struct {
	UserID          string  `json:"user_id"`
	MaxPerDay       *int    `json:"eventos_max_por_dia,omitempty" validate:"omitempty,min=1,max=5"`
	WarningMode     *string `json:"modo_aviso,omitempty" validate:"omitempty,oneof=informativo sugestivo restritivo"`
	Active          *bool   `json:"agenda_ativa,omitempty"`
	BlockedWeekdays *[]int  `json:"dias_semana_bloqueados,omitempty" validate:"omitempty,dive,min=0,max=6"`
	MassRulesActive *bool   `json:"regras_massa_ativas,omitempty"`
	BlockHolidays   *bool   `json:"bloquear_feriados,omitempty"`
	ParityRule      *string `json:"regra_par_impar,omitempty" validate:"omitempty,oneof=nenhum pares impares"`
	WeekRule        *string `json:"regra_semanal,omitempty" validate:"omitempty,oneof=nenhum trabalha_pares trabalha_impares"`
	// Пустая строка сбрасывает точку отсчёта.
	WeekRuleStart *string `json:"regra_semanal_inicio,omitempty"`
}

// ToggleAgendaRuleRequest описывает клик по кнопке правила.
// Field: regra_par_impar | regra_semanal | dia_semana.
type ToggleAgendaRuleRequest struct {
	UserID string `json:"user_id"`
	Field  string `json:"campo" validate:"required,oneof=regra_par_impar regra_semanal dia_semana"`
	Value  string `json:"valor,omitempty"`
	// Для dia_semana: 0=воскресенье..6=суббота.
	Weekday *int `json:"dia_semana,omitempty" validate:"omitempty,min=0,max=6"`
}

// ---- календарь ----

type GetMonthRequest struct {
	UserID string `json:"user_id"`
	Year   int    `json:"ano"`
	Month  int    `json:"mes"`
}

type Day struct {
	Date      string   `json:"data"`
	Status    string   `json:"status"`
	Count     int      `json:"eventos"`
	BlockedBy string   `json:"bloqueio,omitempty"`
	Holiday   *Holiday `json:"feriado,omitempty"`
}

type MonthView struct {
	Year      int    `json:"ano"`
	Month     int    `json:"mes"`
	MaxPerDay int    `json:"eventos_max_por_dia"`
	Days      []*Day `json:"dias"`
}

type CheckAvailabilityRequest struct {
	UserID string `json:"user_id"`
	Date   string `json:"data"`
}

type Availability struct {
	Date      string   `json:"data"`
	Available bool     `json:"disponivel"`
	Status    string   `json:"status"`
	Current   int      `json:"eventos_atual"`
	Max       int      `json:"eventos_max"`
	Mode      string   `json:"modo_aviso"`
	Blocked   bool     `json:"bloqueada"`
	Allowed   bool     `json:"permitido"`
	Message   string   `json:"mensagem"`
	Holiday   *Holiday `json:"feriado,omitempty"`
	DateLabel string   `json:"data_formatada"`
}

// ---- импорт ----

type ImportEventsRequest struct {
	UserID   string `json:"user_id"`
	FileName string `json:"nome_arquivo"`
	// В JSON передаётся как base64.
	Content  []byte `json:"conteudo"`
	Strategy string `json:"estrategia"`
}

type ImportResult struct {
	Success   bool     `json:"success"`
	HistoryID string   `json:"historico_id,omitempty"`
	Added     int      `json:"eventos_adicionados"`
	Updated   int      `json:"eventos_atualizados"`
	Skipped   int      `json:"eventos_ignorados"`
	Removed   int      `json:"eventos_removidos"`
	Errors    []string `json:"errors"`
}

type ImportHistory struct {
	ID        string   `json:"id"`
	FileName  string   `json:"nome_arquivo"`
	Strategy  string   `json:"estrategia_importacao"`
	Added     int      `json:"eventos_adicionados"`
	Updated   int      `json:"eventos_atualizados"`
	Skipped   int      `json:"eventos_ignorados"`
	Removed   int      `json:"eventos_removidos"`
	Errors    []string `json:"errors,omitempty"`
	CreatedAt string   `json:"created_at"`
}

type ListImportHistoryRequest struct {
	UserID   string `json:"user_id"`
	Page     int    `json:"page,omitempty"`
	PageSize int    `json:"page_size,omitempty"`
}

type ListImportHistoryResponse struct {
	Items   []*ImportHistory `json:"historico"`
	Total   int64            `json:"total"`
	HasNext bool             `json:"has_next"`
}

type RollbackImportRequest struct {
	UserID   string `json:"user_id"`
	ImportID string `json:"historico_id"`
}

type RollbackImportResponse struct {
	Removed int64 `json:"eventos_removidos"`
}

// ---- план и экспорт ----

type PlanLimits struct {
	Premium          bool  `json:"premium"`
	ActiveEvents     int64 `json:"eventos_ativos"`
	ActiveEventLimit int   `json:"limite_eventos"` // 0 — без лимита
	CanCreateEvent   bool  `json:"pode_criar_evento"`
	CanImport        bool  `json:"pode_importar"`
}

type ExportFeedResponse struct {
	FileName    string `json:"nome_arquivo"`
	ContentType string `json:"content_type"`
	Content     string `json:"conteudo"`
}
