package test_test

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/golang/mock/gomock"
	"github.com/loopcontext/diagcat"
	mock_diagcat "github.com/loopcontext/diagcat/test/mock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Diagnostic Catalog", func() {
	var catalog *diagcat.Catalog
	var resourceDir string

	writeResource := func(name, content string) {
		err := os.WriteFile(filepath.Join(resourceDir, name), []byte(content), 0o600)
		Expect(err).NotTo(HaveOccurred())
	}

	BeforeEach(func() {
		var err error
		catalog, err = diagcat.NewCatalog([]diagcat.Entry{
			{Name: "ERR_NO_SUCH_FILE", Default: "no such file"},
			{Name: "ERR_TYPE_MISMATCH", Default: "type mismatch"},
			{Name: "WARN_UNUSED", Default: "unused variable"},
		})
		Expect(err).NotTo(HaveOccurred())

		resourceDir, err = os.MkdirTemp("", "diagcat-suite-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(resourceDir)
	})

	It("should serve defaults when no localization file exists", func() {
		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "fr", ResourcePath: resourceDir})
		Expect(producer).To(BeNil())
	})

	It("should translate from a strings file", func() {
		writeResource("fr.strings", `"ERR_NO_SUCH_FILE" = "fichier introuvable";`)

		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "fr", ResourcePath: resourceDir})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "no such file")).To(Equal("fichier introuvable"))
		Expect(producer.State()).To(Equal(diagcat.Initialized))
	})

	It("should fall back per id for untranslated entries", func() {
		writeResource("fr.yaml", "- id: ERR_TYPE_MISMATCH\n  msg: \"incompatibilité de type\"\n")

		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "fr", ResourcePath: resourceDir})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "no such file")).To(Equal("no such file"))
		Expect(producer.GetMessageOr(1, "type mismatch")).To(Equal("incompatibilité de type"))
	})

	It("should prefer the serialized table over text formats", func() {
		writer := diagcat.NewTableWriter()
		writer.Insert(0, "from the table")
		Expect(writer.Emit(filepath.Join(resourceDir, "fr.db"))).To(Succeed())
		writeResource("fr.yaml", "- id: ERR_NO_SUCH_FILE\n  msg: \"from yaml\"\n")
		writeResource("fr.strings", `"ERR_NO_SUCH_FILE" = "from strings";`)

		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "fr", ResourcePath: resourceDir})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "D")).To(Equal("from the table"))
	})

	It("should prefer yaml over strings when no table exists", func() {
		writeResource("fr.yaml", "- id: ERR_NO_SUCH_FILE\n  msg: \"from yaml\"\n")
		writeResource("fr.strings", `"ERR_NO_SUCH_FILE" = "from strings";`)

		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "fr", ResourcePath: resourceDir})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "D")).To(Equal("from yaml"))
	})

	It("should append symbolic names when debug names are enabled", func() {
		writeResource("fr.strings", `"WARN_UNUSED" = "variable inutilisée";`)

		producer := diagcat.ProducerFor(catalog, diagcat.Config{
			Locale:       "fr",
			ResourcePath: resourceDir,
			DebugNames:   true,
		})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(2, "D")).To(Equal("variable inutilisée [WARN_UNUSED]"))
		Expect(producer.GetMessageOr(0, "no such file")).To(Equal("no such file"))
	})

	It("should degrade to defaults on a malformed file", func() {
		writeResource("fr.strings", `"ERR_NO_SUCH_FILE" = "never closed`)

		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "fr", ResourcePath: resourceDir})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "no such file")).To(Equal("no such file"))
		Expect(producer.State()).To(Equal(diagcat.FailedInitialization))
	})

	It("should notify the observer about unknown ids", func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		observer := mock_diagcat.NewMockObserver(ctrl)
		observer.EXPECT().OnUnknownID("fr", "ERR_FROM_THE_FUTURE")

		writeResource("fr.strings",
			`"ERR_NO_SUCH_FILE" = "fichier introuvable";`+"\n"+
				`"ERR_FROM_THE_FUTURE" = "pas encore inventé";`)

		producer := diagcat.ProducerFor(catalog, diagcat.Config{
			Locale:       "fr",
			ResourcePath: resourceDir,
			Observer:     observer,
		})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "D")).To(Equal("fichier introuvable"))
		Expect(producer.State()).To(Equal(diagcat.Initialized))
		Expect(producer.UnknownIDs()).To(ConsistOf("ERR_FROM_THE_FUTURE"))
	})

	It("should survive a panicking observer", func() {
		ctrl := gomock.NewController(GinkgoT())
		defer ctrl.Finish()

		observer := mock_diagcat.NewMockObserver(ctrl)
		observer.EXPECT().OnUnknownID("fr", "NOPE").Do(func(string, string) {
			panic("observer misbehaved")
		})

		writeResource("fr.yaml", "- id: NOPE\n  msg: \"x\"\n- id: ERR_NO_SUCH_FILE\n  msg: \"ok\"\n")

		producer := diagcat.ProducerFor(catalog, diagcat.Config{
			Locale:       "fr",
			ResourcePath: resourceDir,
			Observer:     observer,
		})
		Expect(producer).NotTo(BeNil())
		Expect(producer.GetMessageOr(0, "D")).To(Equal("ok"))
	})

	It("should round trip the converter output through the resolver", func() {
		var buf bytes.Buffer
		Expect(diagcat.ConvertToStrings(catalog, &buf)).To(Succeed())
		writeResource("en.strings", buf.String())

		producer := diagcat.ProducerFor(catalog, diagcat.Config{Locale: "en", ResourcePath: resourceDir})
		Expect(producer).NotTo(BeNil())
		for i := 0; i < catalog.Count(); i++ {
			id := diagcat.ID(i)
			Expect(producer.GetMessageOr(id, "D")).To(Equal(catalog.Default(id)))
		}
	})
})
