package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"comnews-scraper/internal/article"
	"comnews-scraper/internal/checksum"
	"comnews-scraper/internal/observability"
)

// Repository кладёт записи в MS SQL через MERGE: повторный прогон по тем же
// URL обновляет строки, а не плодит дубликаты.
type Repository struct {
	db             *sql.DB
	commandTimeout time.Duration
	checksum       *checksum.Generator
	logger         *observability.Logger
}

func NewRepository(dsn string, commandTimeout time.Duration, logger *observability.Logger) (*Repository, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{
		db:             db,
		commandTimeout: commandTimeout,
		checksum:       checksum.NewGenerator(),
		logger:         logger,
	}, nil
}

func (r *Repository) Save(ctx context.Context, art *article.Article) error {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `
		MERGE INTO TblArticles AS target
		USING (SELECT @URL AS URL) AS source
		ON target.[URL] = source.URL
		WHEN MATCHED THEN
			UPDATE SET
				[SequenceNum] = @SequenceNum,
				[Title] = @Title,
				[Text] = @Text,
				[DT] = @DT,
				[Topics] = @Topics,
				[Authors] = @Authors,
				[CheckSum] = @CheckSum
		WHEN NOT MATCHED THEN
			INSERT ([URL], [SequenceNum], [Title], [Text], [DT], [Topics], [Authors], [CheckSum])
			VALUES (@URL, @SequenceNum, @Title, @Text, @DT, @Topics, @Authors, @CheckSum);
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.logger.Error("Failed to close statement", "error", err.Error())
		}
	}()

	var dt sql.NullTime
	if art.HasDate() {
		dt = sql.NullTime{Time: art.Date, Valid: true}
	}

	_, err = stmt.ExecContext(ctx,
		sql.Named("URL", art.URL),
		sql.Named("SequenceNum", art.ID),
		sql.Named("Title", art.Title),
		sql.Named("Text", art.Text),
		sql.Named("DT", dt),
		sql.Named("Topics", strings.Join(art.Topics, ", ")),
		sql.Named("Authors", strings.Join(art.Authors, ", ")),
		sql.Named("CheckSum", r.checksum.Content(art)),
	)
	if err != nil {
		return fmt.Errorf("failed to execute upsert: %w", err)
	}

	return nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
