package notify_test

import (
	"fmt"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/collabsec/admin-console/internal/notify"
)

func TestNotify(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Notify Suite")
}

var _ = Describe("Center", func() {
	var center *notify.Center

	BeforeEach(func() {
		center = notify.NewCenter(5)
	})

	It("should record level, title and description", func() {
		center.Success("Success", "VM start completed successfully")

		recent := center.Recent()
		Expect(recent).To(HaveLen(1))
		Expect(recent[0].Level).To(Equal(notify.LevelSuccess))
		Expect(recent[0].Title).To(Equal("Success"))
		Expect(recent[0].Description).To(Equal("VM start completed successfully"))
		Expect(recent[0].ID).NotTo(BeEmpty())
		Expect(recent[0].CreatedAt).NotTo(BeZero())
	})

	It("should return notifications newest first", func() {
		center.Info("first", "")
		center.Error("second", "")
		center.Success("third", "")

		recent := center.Recent()
		Expect(recent).To(HaveLen(3))
		Expect(recent[0].Title).To(Equal("third"))
		Expect(recent[1].Title).To(Equal("second"))
		Expect(recent[2].Title).To(Equal("first"))
	})

	// Given a full buffer
	// When more notifications arrive
	// Then the oldest entries are dropped
	It("should drop the oldest entries beyond capacity", func() {
		for i := 0; i < 8; i++ {
			center.Info(fmt.Sprintf("n%d", i), "")
		}

		recent := center.Recent()
		Expect(recent).To(HaveLen(5))
		Expect(recent[0].Title).To(Equal("n7"))
		Expect(recent[4].Title).To(Equal("n3"))
	})

	It("should hand out copies that later emissions do not mutate", func() {
		center.Info("old", "")
		snapshot := center.Recent()

		center.Info("new", "")

		Expect(snapshot).To(HaveLen(1))
		Expect(snapshot[0].Title).To(Equal("old"))
	})

	It("should fall back to the default capacity when misconfigured", func() {
		c := notify.NewCenter(0)
		for i := 0; i < notify.DefaultCapacity+10; i++ {
			c.Info("n", "")
		}
		Expect(c.Recent()).To(HaveLen(notify.DefaultCapacity))
	})
})

var _ = Describe("Multi", func() {
	It("should fan out to every sink", func() {
		a := notify.NewCenter(5)
		b := notify.NewCenter(5)
		multi := notify.NewMulti(a, b)

		multi.Error("Error", "Failed to restart VM")

		for _, sink := range []*notify.Center{a, b} {
			recent := sink.Recent()
			Expect(recent).To(HaveLen(1))
			Expect(recent[0].Level).To(Equal(notify.LevelError))
		}
	})
})
