package wkdump_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/wkdump/internal/ent/fetch"
	"github.com/gnames/wkdump/internal/io/convertio"
	"github.com/gnames/wkdump/internal/io/fetchio"
	"github.com/gnames/wkdump/internal/io/kvio"
	"github.com/gnames/wkdump/internal/io/loadio"
	wkdump "github.com/gnames/wkdump/pkg"
	"github.com/gnames/wkdump/pkg/config"
	"github.com/gnames/wkdump/pkg/ent/subject"
)

var pages = []string{
	`{"object":"collection","pages":{"per_page":2,"next_url":"%s/subjects?page_after_id=2"},` +
		`"data":[` +
		`{"id":1,"object":"radical","data":{"characters":"一","meaning_mnemonic":"This is the <radical>ground</radical>."}},` +
		`{"id":2,"object":"radical","data":{"characters":"丨","meaning_mnemonic":"A <radical>stick</radical>."}}]}`,
	`{"object":"collection","pages":{"per_page":2,"next_url":null},` +
		`"data":[{"id":440,"object":"kanji","data":{"meaning_mnemonic":"Lie on the ground.","reading_mnemonic":"Say <reading>いち</reading>."}}]}`,
}

var _ = Describe("WKdump", func() {
	var srv *httptest.Server
	var dir string
	var fail bool

	BeforeEach(func() {
		var err error
		fail = false
		dir, err = os.MkdirTemp("", "wkdump")
		Expect(err).ToNot(HaveOccurred())
		srv = httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer token" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				if r.URL.Query().Get("page_after_id") == "" {
					fmt.Fprintf(w, pages[0], srv.URL)
					return
				}
				if fail {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				fmt.Fprint(w, pages[1])
			}))
	})

	AfterEach(func() {
		srv.Close()
		os.RemoveAll(dir)
	})

	getConfig := func() config.Config {
		return config.New(
			config.OptWorkDir(dir),
			config.OptAPIToken("token"),
			config.OptBaseURL(srv.URL+"/subjects"),
		)
	}

	Describe("New", func() {
		It("keeps configuration", func() {
			cfg := getConfig()
			wkd := wkdump.New(cfg)
			Expect(wkd.Config().BaseURL).To(Equal(srv.URL + "/subjects"))
			Expect(wkd.Config().SubjectsPath).To(HavePrefix(dir))
		})
	})

	Describe("Download", func() {
		It("saves subjects of all pages", func() {
			cfg := getConfig()
			wkd := wkdump.New(cfg)
			f, err := fetchio.New(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(wkd.Download(f)).To(Succeed())

			data, err := os.ReadFile(cfg.SubjectsPath)
			Expect(err).ToNot(HaveOccurred())
			subjs, err := subject.ParseList(data)
			Expect(err).ToNot(HaveOccurred())
			Expect(subjs).To(HaveLen(3))
			id, err := subjs[2].ID()
			Expect(err).ToNot(HaveOccurred())
			Expect(id).To(Equal("440"))
		})

		It("does not save anything when a page fails", func() {
			fail = true
			cfg := getConfig()
			wkd := wkdump.New(cfg)
			f, err := fetchio.New(cfg)
			Expect(err).ToNot(HaveOccurred())
			err = wkd.Download(f)
			Expect(err).To(MatchError(fetch.ErrStatus))
			_, err = os.Stat(cfg.SubjectsPath)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})

		It("requires API token", func() {
			cfg := config.New(config.OptWorkDir(dir))
			_, err := fetchio.New(cfg)
			Expect(err).To(MatchError(fetch.ErrNoToken))
		})
	})

	Describe("Convert, Load and Mnemonic", func() {
		It("makes subjects available in a key-value store", func() {
			cfg := getConfig()
			wkd := wkdump.New(cfg)
			f, err := fetchio.New(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(wkd.Download(f)).To(Succeed())
			Expect(wkd.Convert(convertio.New(cfg))).To(Succeed())

			store, err := kvio.New(cfg.KVDir, true)
			Expect(err).ToNot(HaveOccurred())
			num, err := wkd.Load(loadio.New(cfg, store))
			Expect(err).ToNot(HaveOccurred())
			Expect(num).To(Equal(3))

			store, err = kvio.Existing(cfg.KVDir)
			Expect(err).ToNot(HaveOccurred())
			res, err := wkd.Mnemonic(store, "1", subject.Meaning)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("This is the <radical>ground</radical>."))

			res, err = wkd.Mnemonic(store, "440", subject.Reading)
			Expect(err).ToNot(HaveOccurred())
			Expect(res).To(Equal("Say <reading>いち</reading>."))

			_, err = wkd.Mnemonic(store, "2", subject.Reading)
			Expect(err).To(MatchError(subject.ErrNoMnemonic))

			_, err = wkd.Mnemonic(store, "999", subject.Meaning)
			Expect(err).To(MatchError(wkdump.ErrNotFound))
		})

		It("reports a store that was never loaded", func() {
			cfg := getConfig()
			_, err := kvio.Existing(cfg.KVDir)
			Expect(err).To(MatchError(kvio.ErrNoStore))
			_, err = os.Stat(cfg.KVDir)
			Expect(os.IsNotExist(err)).To(BeTrue())
		})
	})
})
