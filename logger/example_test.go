package logger_test

import (
	"fmt"

	"github.com/redthing1/redlog/formatter"
	"github.com/redthing1/redlog/logger"
	"github.com/redthing1/redlog/sink"
)

func Example() {
	out := sink.NewStringSink()
	log := logger.GetLogger("app").
		WithFormatter(formatter.NewPlainFormatter()).
		WithSink(out)

	log.Info("service started", logger.F("port", 8080))

	fmt.Println(out.Output())
	// Output: [app] [inf] service started port=8080
}

func ExampleLogger_WithName() {
	out := sink.NewStringSink()
	log := logger.GetLogger("app").
		WithFormatter(formatter.NewPlainFormatter()).
		WithSink(out)

	dbLog := log.WithName("db").WithField("host", "localhost")
	dbLog.Info("connected")

	fmt.Println(out.Output())
	// Output: [app.db] [inf] connected host=localhost
}

func ExampleLogger_Infof() {
	out := sink.NewStringSink()
	log := logger.GetLogger("worker").
		WithFormatter(formatter.NewPlainFormatter()).
		WithSink(out)

	log.Infof("processed %d of %d items", 7, 10)

	fmt.Println(out.Output())
	// Output: [worker] [inf] processed 7 of 10 items
}
