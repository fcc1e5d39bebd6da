package cryo_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.cloudfoundry.org/cryo"
)

var _ = Describe("Support", func() {
	var imageDir string

	BeforeEach(func() {
		var err error
		imageDir, err = os.MkdirTemp("", "cryo-image")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(imageDir)
	})

	Describe("NewSupport", func() {
		It("accepts an existing directory", func() {
			support, err := cryo.NewSupport(imageDir)
			Expect(err).ToNot(HaveOccurred())
			Expect(support.Spec().ImageDir).To(Equal(imageDir))
		})

		It("rejects an empty path", func() {
			_, err := cryo.NewSupport("")
			Expect(err).To(HaveOccurred())
		})

		It("rejects a path that does not exist", func() {
			_, err := cryo.NewSupport(filepath.Join(imageDir, "nope"))
			Expect(err).To(HaveOccurred())
		})

		It("rejects a path that is not a directory", func() {
			file := filepath.Join(imageDir, "file")
			Expect(os.WriteFile(file, []byte("x"), 0644)).To(Succeed())

			_, err := cryo.NewSupport(file)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SetLogLevel", func() {
		var support *cryo.Support

		BeforeEach(func() {
			var err error
			support, err = cryo.NewSupport(imageDir)
			Expect(err).ToNot(HaveOccurred())
		})

		It("accepts levels 1 through 4", func() {
			for level := 1; level <= 4; level++ {
				Expect(support.SetLogLevel(level)).To(Succeed())
				Expect(support.Spec().LogLevel).To(Equal(level))
			}
		})

		It("rejects levels outside 1 through 4 without mutating state", func() {
			Expect(support.SetLogLevel(2)).To(Succeed())

			Expect(support.SetLogLevel(0)).ToNot(Succeed())
			Expect(support.SetLogLevel(5)).ToNot(Succeed())
			Expect(support.SetLogLevel(-1)).ToNot(Succeed())

			Expect(support.Spec().LogLevel).To(Equal(2))
		})
	})

	Describe("SetLogFile", func() {
		var support *cryo.Support

		BeforeEach(func() {
			var err error
			support, err = cryo.NewSupport(imageDir)
			Expect(err).ToNot(HaveOccurred())
		})

		It("accepts a plain file name", func() {
			Expect(support.SetLogFile("engine.log")).To(Succeed())
			Expect(support.Spec().LogFile).To(Equal("engine.log"))
		})

		It("rejects a path without mutating state", func() {
			Expect(support.SetLogFile("engine.log")).To(Succeed())

			Expect(support.SetLogFile(filepath.Join("logs", "engine.log"))).ToNot(Succeed())
			Expect(support.SetLogFile("")).ToNot(Succeed())

			Expect(support.Spec().LogFile).To(Equal("engine.log"))
		})
	})

	Describe("setting options twice", func() {
		It("keeps the value from the last call", func() {
			support, err := cryo.NewSupport(imageDir)
			Expect(err).ToNot(HaveOccurred())

			support.SetLeaveRunning(true).SetLeaveRunning(false)
			Expect(support.SetLogLevel(1)).To(Succeed())
			Expect(support.SetLogLevel(3)).To(Succeed())

			spec := support.Spec()
			Expect(spec.LeaveRunning).To(BeFalse())
			Expect(spec.LogLevel).To(Equal(3))
		})
	})

	Describe("SetWorkDir", func() {
		It("validates like the image directory", func() {
			support, err := cryo.NewSupport(imageDir)
			Expect(err).ToNot(HaveOccurred())

			Expect(support.SetWorkDir(filepath.Join(imageDir, "nope"))).ToNot(Succeed())
			Expect(support.Spec().WorkDir).To(BeEmpty())

			Expect(support.SetWorkDir(imageDir)).To(Succeed())
			Expect(support.Spec().WorkDir).To(Equal(imageDir))
		})
	})

	Describe("NewSupportFromSpec", func() {
		It("routes every field through its setter", func() {
			support, err := cryo.NewSupportFromSpec(cryo.CheckpointSpec{
				ImageDir:       imageDir,
				WorkDir:        imageDir,
				LeaveRunning:   true,
				ShellJob:       true,
				ExtUnixSupport: true,
				LogLevel:       4,
				LogFile:        "engine.log",
				FileLocks:      true,
			})
			Expect(err).ToNot(HaveOccurred())

			spec := support.Spec()
			Expect(spec.ImageDir).To(Equal(imageDir))
			Expect(spec.WorkDir).To(Equal(imageDir))
			Expect(spec.LeaveRunning).To(BeTrue())
			Expect(spec.ShellJob).To(BeTrue())
			Expect(spec.ExtUnixSupport).To(BeTrue())
			Expect(spec.LogLevel).To(Equal(4))
			Expect(spec.LogFile).To(Equal("engine.log"))
			Expect(spec.FileLocks).To(BeTrue())
		})

		It("rejects a spec with an invalid log level", func() {
			_, err := cryo.NewSupportFromSpec(cryo.CheckpointSpec{
				ImageDir: imageDir,
				LogLevel: 9,
			})
			Expect(err).To(HaveOccurred())
		})
	})
})
