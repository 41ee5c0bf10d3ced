package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/Leganyst/agenda-platform/internal/agenda"
	agendav1 "github.com/Leganyst/agenda-platform/internal/api/agenda/v1"
	"github.com/Leganyst/agenda-platform/internal/log"
	"github.com/Leganyst/agenda-platform/internal/model"
	"github.com/Leganyst/agenda-platform/internal/repository"
)

var errPremiumRequired = status.Error(codes.PermissionDenied, "Importação disponível apenas no plano premium")

// importRun хранит состояние одного импорта внутри транзакции.
type importRun struct {
	userID   uuid.UUID
	importID uuid.UUID
	fileName string
	strategy agenda.Strategy
	origin   model.EventOrigin
}

// ImportEvents разбирает файл и сверяет строки с агендой по выбранной
// стратегии. Весь импорт — одна транзакция; каждая строка — savepoint,
// поэтому ошибка строки попадает в список и не откатывает остальные.
func (s *AgendaService) ImportEvents(ctx context.Context, req *agendav1.ImportEventsRequest) (*agendav1.ImportResult, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	fileName := filepath.Base(strings.TrimSpace(req.FileName))
	if fileName == "" || fileName == "." {
		return nil, status.Error(codes.InvalidArgument, "nome_arquivo is required")
	}
	strategy, err := agenda.ParseStrategy(req.Strategy)
	if err != nil {
		return nil, domainError(err)
	}

	premium, err := s.isPremium(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !premium {
		return nil, errPremiumRequired
	}

	format, rows, err := agenda.ParseFile(fileName, req.Content)
	if err != nil {
		return nil, domainError(err)
	}

	run := importRun{
		userID:   userID,
		fileName: fileName,
		strategy: strategy,
		origin:   model.EventOrigin(format.Origin()),
	}

	var hist *model.ImportHistory
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		hist, err = run.exec(ctx, tx, s.repos, rows)
		return err
	})
	if err != nil {
		log.Error("import failed", err, "user_id", userID, "file", fileName, "strategy", strategy)
		return &agendav1.ImportResult{
			Success: false,
			Errors:  []string{"Erro geral: " + err.Error()},
		}, nil
	}

	log.Info("import done",
		"user_id", userID,
		"import_id", hist.ID,
		"added", hist.Added,
		"updated", hist.Updated,
		"skipped", hist.Skipped,
		"removed", hist.Removed,
		"errors", len(hist.Errors),
	)
	return &agendav1.ImportResult{
		Success:   true,
		HistoryID: hist.ID.String(),
		Added:     hist.Added,
		Updated:   hist.Updated,
		Skipped:   hist.Skipped,
		Removed:   hist.Removed,
		Errors:    append([]string{}, hist.Errors...),
	}, nil
}

func (r *importRun) exec(ctx context.Context, tx *gorm.DB, repos Repositories, rows []agenda.ParsedEvent) (*model.ImportHistory, error) {
	events := repos.Events.WithTx(tx)
	imports := repos.Imports.WithTx(tx)

	hist := &model.ImportHistory{
		UserID:   r.userID,
		FileName: r.fileName,
		Strategy: string(r.strategy),
	}
	if err := imports.Create(ctx, hist); err != nil {
		return nil, fmt.Errorf("criar histórico: %w", err)
	}
	r.importID = hist.ID

	var counts agenda.ImportCounts
	if r.strategy == agenda.StrategyReplaceAll {
		n, err := events.DeleteAll(ctx, r.userID, false)
		if err != nil {
			return nil, fmt.Errorf("remover eventos importados: %w", err)
		}
		counts.Removed = int(n)
	}

	for _, row := range rows {
		var action agenda.Action
		err := tx.Transaction(func(rowTx *gorm.DB) error {
			var err error
			action, err = r.applyRow(ctx, events.WithTx(rowTx), row)
			return err
		})
		if err != nil {
			counts.Errors = append(counts.Errors, agenda.RowError(row, err))
			continue
		}
		switch action {
		case agenda.ActionInsert:
			counts.Added++
		case agenda.ActionUpdate:
			counts.Updated++
		case agenda.ActionSkip:
			counts.Skipped++
		}
	}

	hist.Added = counts.Added
	hist.Updated = counts.Updated
	hist.Skipped = counts.Skipped
	hist.Removed = counts.Removed
	hist.Errors = counts.Errors
	if err := imports.UpdateResult(ctx, hist); err != nil {
		return nil, fmt.Errorf("atualizar histórico: %w", err)
	}
	return hist, nil
}

func (r *importRun) applyRow(ctx context.Context, events repository.EventRepository, row agenda.ParsedEvent) (agenda.Action, error) {
	date, err := agenda.ParseDate(row.Date)
	if err != nil {
		return 0, errors.New("data inválida")
	}

	var existing *model.Event
	if r.strategy != agenda.StrategyReplaceAll {
		existing, err = events.FindByKey(ctx, r.userID, date, row.Name)
		if err != nil {
			return 0, err
		}
	}

	importID := r.importID
	action := agenda.Decide(r.strategy, existing != nil)
	switch action {
	case agenda.ActionInsert:
		ev := &model.Event{
			UserID:     r.userID,
			Date:       model.NewDate(date),
			Type:       row.Type,
			ClientName: row.Name,
			City:       row.City,
			Status:     model.EventStatusConfirmed,
			Notes:      "Importado de " + r.fileName,
			Origin:     r.origin,
			ImportID:   &importID,
		}
		if err := events.Create(ctx, ev); err != nil {
			return 0, err
		}
	case agenda.ActionUpdate:
		if row.Type != "" {
			existing.Type = row.Type
		}
		if row.City != "" {
			existing.City = row.City
		}
		existing.Notes = "Atualizado de " + r.fileName
		existing.ImportID = &importID
		if err := events.Update(ctx, existing); err != nil {
			return 0, err
		}
	}
	return action, nil
}

func (s *AgendaService) ListImportHistory(ctx context.Context, req *agendav1.ListImportHistoryRequest) (*agendav1.ListImportHistoryResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}

	page, size, offset := agenda.NormalizePage(req.Page, req.PageSize)
	items, total, err := s.repos.Imports.List(ctx, userID, size, offset)
	if err != nil {
		return nil, storageError("list import history", err)
	}

	resp := &agendav1.ListImportHistoryResponse{
		Items: make([]*agendav1.ImportHistory, 0, len(items)),
		Total: total,
	}
	for i := range items {
		resp.Items = append(resp.Items, toImportHistoryPB(&items[i]))
	}
	resp.HasNext = agenda.NewPage(resp.Items, page, size, total).HasNext
	return resp, nil
}

// RollbackImport удаляет события импорта и запись истории. События,
// удалённые последующими импортами substituir_tudo, не восстанавливаются.
func (s *AgendaService) RollbackImport(ctx context.Context, req *agendav1.RollbackImportRequest) (*agendav1.RollbackImportResponse, error) {
	userID, err := parseUserID(req.UserID)
	if err != nil {
		return nil, err
	}
	importID, err := parseID("historico_id", req.ImportID)
	if err != nil {
		return nil, err
	}

	var removed int64
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		imports := s.repos.Imports.WithTx(tx)
		if _, err := imports.GetByID(ctx, userID, importID); err != nil {
			return err
		}
		n, err := s.repos.Events.WithTx(tx).DeleteByImport(ctx, userID, importID)
		if err != nil {
			return err
		}
		removed = n
		_, err = imports.Delete(ctx, userID, importID)
		return err
	})
	if err != nil {
		return nil, storageError("rollback import", err)
	}

	log.Info("import rolled back", "user_id", userID, "import_id", importID, "removed", removed)
	return &agendav1.RollbackImportResponse{Removed: removed}, nil
}
