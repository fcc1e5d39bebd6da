package main

import (
	"os"
	"path"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Config", func() {
	var (
		tmpdir     string
		configPath string
	)

	BeforeEach(func() {
		var err error
		tmpdir, err = os.MkdirTemp("", "cryo-agent-config")
		Expect(err).ToNot(HaveOccurred())

		configPath = path.Join(tmpdir, "config.yaml")
	})

	AfterEach(func() {
		os.RemoveAll(tmpdir)
	})

	Describe("loadConfig", func() {
		Context("when the file does not exist", func() {
			It("falls back to the defaults", func() {
				config, err := loadConfig(configPath)
				Expect(err).ToNot(HaveOccurred())

				Expect(config.ListenNetwork).To(Equal("unix"))
				Expect(config.ListenAddr).To(Equal("/tmp/cryo.sock"))
				Expect(config.StackdriverProject).To(BeEmpty())
			})
		})

		Context("when the file sets every field", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(configPath, []byte(
					"listenNetwork: tcp\n"+
						"listenAddr: 127.0.0.1:7777\n"+
						"stackdriverProject: some-project\n",
				), 0644)).To(Succeed())
			})

			It("uses the file's values", func() {
				config, err := loadConfig(configPath)
				Expect(err).ToNot(HaveOccurred())

				Expect(config.ListenNetwork).To(Equal("tcp"))
				Expect(config.ListenAddr).To(Equal("127.0.0.1:7777"))
				Expect(config.StackdriverProject).To(Equal("some-project"))
			})
		})

		Context("when the file leaves fields out", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(configPath, []byte(
					"stackdriverProject: some-project\n",
				), 0644)).To(Succeed())
			})

			It("keeps the defaults for the missing fields", func() {
				config, err := loadConfig(configPath)
				Expect(err).ToNot(HaveOccurred())

				Expect(config.ListenNetwork).To(Equal("unix"))
				Expect(config.ListenAddr).To(Equal("/tmp/cryo.sock"))
				Expect(config.StackdriverProject).To(Equal("some-project"))
			})
		})

		Context("when the file is not valid YAML", func() {
			BeforeEach(func() {
				Expect(os.WriteFile(configPath, []byte("{nope"), 0644)).To(Succeed())
			})

			It("returns an error naming the file", func() {
				_, err := loadConfig(configPath)
				Expect(err).To(HaveOccurred())
				Expect(err.Error()).To(ContainSubstring(configPath))
			})
		})
	})

	Describe("withOverrides", func() {
		var config Config

		BeforeEach(func() {
			config = Config{
				ListenNetwork:      "unix",
				ListenAddr:         "/var/run/cryo.sock",
				StackdriverProject: "file-project",
			}
		})

		It("applies non-empty flag values over the file's", func() {
			config = config.withOverrides("tcp", "127.0.0.1:7777", "flag-project")

			Expect(config.ListenNetwork).To(Equal("tcp"))
			Expect(config.ListenAddr).To(Equal("127.0.0.1:7777"))
			Expect(config.StackdriverProject).To(Equal("flag-project"))
		})

		It("keeps the file's values when the flags are unset", func() {
			config = config.withOverrides("", "", "")

			Expect(config.ListenNetwork).To(Equal("unix"))
			Expect(config.ListenAddr).To(Equal("/var/run/cryo.sock"))
			Expect(config.StackdriverProject).To(Equal("file-project"))
		})

		It("overrides fields independently", func() {
			config = config.withOverrides("", "127.0.0.1:7777", "")

			Expect(config.ListenNetwork).To(Equal("unix"))
			Expect(config.ListenAddr).To(Equal("127.0.0.1:7777"))
			Expect(config.StackdriverProject).To(Equal("file-project"))
		})
	})
})
