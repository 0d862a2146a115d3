package source

import (
	"context"
	"time"

	"github.com/songminj/logtrack/types"
)

// LambdaLogs is a fixed feed of Lambda function log lines. A CloudWatch Logs
// backed source would implement the same interface.
type LambdaLogs struct{}

func (l *LambdaLogs) Kind() types.Kind {
	return types.LambdaLog
}

func (l *LambdaLogs) Fetch(ctx context.Context, now time.Time) (types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return types.Dataset{}, err
	}

	rows := []types.Record{
		{
			"timestamp":     now.Add(-5 * time.Minute),
			"function_name": "process-orders",
			"level":         "INFO",
			"message":       "Order processing completed successfully.",
			"request_id":    "req-12345",
		},
		{
			"timestamp":     now.Add(-15 * time.Minute),
			"function_name": "send-report-email",
			"level":         "ERROR",
			"message":       "Failed to send email: SES ThrottlingException",
			"request_id":    "req-23456",
		},
		{
			"timestamp":     now.Add(-time.Hour),
			"function_name": "sync-users",
			"level":         "WARN",
			"message":       "User sync delayed due to API rate limiting.",
			"request_id":    "req-34567",
		},
		{
			"timestamp":     now.Add(-2 * time.Hour),
			"function_name": "sync-users",
			"level":         "DEBUG",
			"message":       "Sync started with batch_size=100",
			"request_id":    "req-45678",
		},
	}
	return types.NewDataset(types.LambdaLog, types.LambdaLogSchema, rows), nil
}

// SESEvents is a fixed feed of outbound mail events.
type SESEvents struct{}

func (s *SESEvents) Kind() types.Kind {
	return types.SESEvent
}

func (s *SESEvents) Fetch(ctx context.Context, now time.Time) (types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return types.Dataset{}, err
	}

	rows := []types.Record{
		{
			"timestamp":  now.Add(-3 * time.Minute),
			"mail_to":    "user1@example.com",
			"subject":    "Daily Report",
			"status":     "DELIVERED",
			"event_type": "Send",
			"message_id": "msg-111",
		},
		{
			"timestamp":  now.Add(-20 * time.Minute),
			"mail_to":    "user2@example.com",
			"subject":    "Password Reset",
			"status":     "BOUNCE",
			"event_type": "Bounce",
			"message_id": "msg-222",
		},
		{
			"timestamp":  now.Add(-2 * time.Hour),
			"mail_to":    "admin@example.com",
			"subject":    "Error Notification",
			"status":     "DELIVERED",
			"event_type": "Send",
			"message_id": "msg-333",
		},
		{
			"timestamp":  now.AddDate(0, 0, -1),
			"mail_to":    "user3@example.com",
			"subject":    "Weekly Summary",
			"status":     "COMPLAINT",
			"event_type": "Complaint",
			"message_id": "msg-444",
		},
	}
	return types.NewDataset(types.SESEvent, types.SESEventSchema, rows), nil
}

// Reports lists generated report files.
type Reports struct{}

func (r *Reports) Kind() types.Kind {
	return types.Report
}

func (r *Reports) Fetch(ctx context.Context, now time.Time) (types.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return types.Dataset{}, err
	}

	rows := []types.Record{
		{
			"report_name": "Lambda Error Summary (오늘)",
			"created_at":  now.Add(-10 * time.Minute),
			"description": "오늘 발생한 Lambda ERROR 로그를 요약한 리포트입니다.",
			"file_url":    "https://example.com/reports/lambda-error-today.pdf",
		},
		{
			"report_name": "SES Bounce Report (이번 주)",
			"created_at":  now.Add(-3 * time.Hour),
			"description": "이번 주동안 BOUNCE 된 메일을 정리한 리포트입니다.",
			"file_url":    "https://example.com/reports/ses-bounce-week.xlsx",
		},
		{
			"report_name": "주간 시스템 리포트",
			"created_at":  now.AddDate(0, 0, -2),
			"description": "주요 Lambda/SES 활동을 종합한 주간 리포트입니다.",
			"file_url":    "https://example.com/reports/system-weekly.html",
		},
	}
	return types.NewDataset(types.Report, types.ReportSchema, rows), nil
}
