package log_test

import (
	"ethsend/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	DescribeTable("ParseLevel",
		func(text string, want zapcore.Level) {
			Expect(log.ParseLevel(text)).To(Equal(want))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("upper case", "WARN", zapcore.WarnLevel),
		Entry("error", "error", zapcore.ErrorLevel),
		Entry("empty", "", zapcore.InfoLevel),
		Entry("unknown", "chatty", zapcore.InfoLevel),
	)

	It("builds a named logger honoring the level", func() {
		logger := log.NewZapLogger("ethsend", zapcore.WarnLevel)
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
	})
})
