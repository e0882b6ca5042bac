package logger_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/Station-Manager/logger"
	"github.com/Station-Manager/logger/bufferadapter"
	"github.com/Station-Manager/logger/fields"
)

func Example() {
	buff := &bufferadapter.Buffer{}
	lgr := logger.New(bufferadapter.New(buff), logger.WithMaxLevel(logger.LevelDebug))

	db := lgr.WithName("db").WithFields(fields.F("shard", 3))
	db.Info("connected")
	db.Error("query failed", errors.New("deadlock"), fields.F("table", "users"))
	db.Trace("dropped")

	for _, e := range buff.Entries() {
		fmt.Println(logger.LevelString(e.Level), e.Msg, e.Fields)
	}

	// Output:
	// info connected (shard=3, logger-name=db)
	// error query failed (shard=3, logger-name=db, error=deadlock, table=users)
}

func ExampleFromCtxOrNop() {
	handle := func(ctx context.Context) {
		logger.FromCtxOrNop(ctx).Info("handling request")
	}

	buff := &bufferadapter.Buffer{}
	lgr := logger.New(bufferadapter.New(buff))

	handle(context.Background())
	handle(logger.ToCtx(context.Background(), lgr))

	fmt.Println(buff.Len())

	// Output:
	// 1
}
