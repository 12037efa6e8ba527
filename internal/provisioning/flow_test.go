package provisioning

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/srmkit/internal/config"
	"github.com/imamik/srmkit/internal/platform/cloudapi"
	"github.com/imamik/srmkit/internal/platform/fc"
	"github.com/imamik/srmkit/internal/platform/nas"
	"github.com/imamik/srmkit/internal/platform/vpc"
	srmtest "github.com/imamik/srmkit/internal/testing"
	"github.com/imamik/srmkit/internal/util/retry"
)

var _ = Describe("Orchestrator", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		cloud  *srmtest.FakeCloud
		o      *Orchestrator
	)

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
		DeferCleanup(func() { cancel() })

		cloud = srmtest.NewFakeCloud()
		cloud.ComputeZones = []string{"cn-hangzhou-h", "cn-hangzhou-i"}
		cloud.SetStorageZones(
			srmtest.StorageZone{ID: "cn-hangzhou-g", Capacity: true},
			srmtest.StorageZone{ID: "cn-hangzhou-i", Performance: true},
		)
		cloud.NetworkPendingPolls = 1
		cloud.SubnetPendingPolls = 1
		cloud.MountTargetPendingPolls = 2

		timeouts := config.TestTimeouts()
		logger := GinkgoLogr
		api := cloudapi.Chain(cloud, cloudapi.WithLogging(logger, "fake"))
		o = NewOrchestrator(
			vpc.NewClient(api, vpc.WithLogger(logger), vpc.WithTimeouts(timeouts)),
			nas.NewClient(api, nas.WithLogger(logger), nas.WithTimeouts(timeouts)),
			fc.NewClient(api, fc.WithIdentityAPI(api), fc.WithLogger(logger)),
			WithLogger(logger),
		)
	})

	Context("when the rule has no resources yet", func() {
		It("provisions network, storage subnet and share in the shared zone", func() {
			By("initialising storage for a new rule")
			got, err := o.InitStorageConfig(ctx, StorageRequest{Region: testRegion, Rule: "billing"})
			Expect(err).NotTo(HaveOccurred())

			By("checking the network config")
			Expect(got.Network.NetworkID).NotTo(BeEmpty())
			Expect(got.Network.SecurityGroupID).NotTo(BeEmpty())
			Expect(got.Network.SubnetIDs).To(Equal([]string{got.Network.StorageSubnetID}))
			Expect(got.Network.StorageZoneID).To(Equal("cn-hangzhou-i"))
			Expect(cloud.SubnetZones(got.Network.NetworkID)).To(Equal([]string{"cn-hangzhou-i"}))

			By("checking the share")
			Expect(got.Action).To(Equal(ShareCreated))
			Expect(got.MountDomain).To(HaveSuffix(".nas.example.com"))
			Expect(cloud.CallsOf("CreateFileSystem")).To(HaveLen(1))
			Expect(cloud.CallsOf("CreateFileSystem")[0].Params).To(HaveKeyWithValue("StorageType", "Performance"))
		})

		It("converges after a failed mount target instead of duplicating resources", func() {
			cloud.FailNext("CreateMountTarget", &cloudapi.APIError{Code: "InternalError", Message: "try again", HTTPStatus: 500})

			By("failing on the first attempt")
			_, err := o.InitStorageConfig(ctx, StorageRequest{Region: testRegion, Rule: "billing"})
			Expect(err).To(HaveOccurred())
			Expect(cloudapi.ErrorCodeOf(err)).To(Equal("InternalError"))
			Expect(cloud.CallCount("CreateFileSystem")).To(Equal(1))

			By("retrying the same request")
			got, err := o.InitStorageConfig(ctx, StorageRequest{Region: testRegion, Rule: "billing"})
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Action).To(Equal(ShareAttached))
			Expect(cloud.CallCount("CreateFileSystem")).To(Equal(1))
			Expect(cloud.CallCount("CreateVpc")).To(Equal(1))
			Expect(cloud.NetworkCount("billing")).To(Equal(1))
		})
	})

	Context("when the rule was provisioned before", func() {
		var first *StorageConfig

		BeforeEach(func() {
			var err error
			first, err = o.InitStorageConfig(ctx, StorageRequest{Region: testRegion, Rule: "billing"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns the existing share without creating anything", func() {
			before := len(cloud.Calls())

			got, err := o.InitStorageConfig(ctx, StorageRequest{Region: testRegion, Rule: "billing"})
			Expect(err).NotTo(HaveOccurred())

			Expect(got.Action).To(Equal(ShareReused))
			Expect(got.ShareID).To(Equal(first.ShareID))
			Expect(got.MountDomain).To(Equal(first.MountDomain))
			for _, c := range cloud.Calls()[before:] {
				Expect(c.Action).NotTo(HavePrefix("Create"), "unexpected %s", c.Action)
			}
		})

		It("keeps the network config stable", func() {
			cfg, err := o.InitNetworkConfig(ctx, NetworkRequest{
				Region:         testRegion,
				Rule:           "billing",
				StorageZoneIDs: []string{"cn-hangzhou-i"},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(first.Network))
		})
	})

	Context("when the caller brings a network", func() {
		var networkID, subnetID string

		BeforeEach(func() {
			networkID = cloud.AddNetwork(testRegion, "shared", "172.16.0.0/12")
			subnetID = cloud.AddSubnet(networkID, "cn-hangzhou-h", "apps", "172.16.0.0/24")
		})

		It("creates a storage subnet in a storage zone of that network", func() {
			got, err := o.InitStorageConfig(ctx, StorageRequest{
				Region:  testRegion,
				Rule:    "billing",
				Network: &NetworkConfig{NetworkID: networkID, SubnetIDs: []string{subnetID}},
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(got.Network.NetworkID).To(Equal(networkID))
			Expect(got.Network.SubnetIDs).To(Equal([]string{subnetID}))
			Expect(got.Network.StorageZoneID).To(Equal("cn-hangzhou-i"))
			Expect(cloud.SubnetZones(networkID)).To(Equal([]string{"cn-hangzhou-h", "cn-hangzhou-i"}))

			By("deriving the block from the network and skipping the used one")
			calls := cloud.CallsOf("CreateVSwitch")
			Expect(calls).To(HaveLen(2))
			Expect(calls[0].Params).To(HaveKeyWithValue("CidrBlock", "172.16.0.0/24"))
			Expect(calls[1].Params).To(HaveKeyWithValue("CidrBlock", "172.16.16.0/24"))
			Expect(cloud.CallCount("CreateVpc")).To(BeZero())
		})

		It("rejects a network without subnets before calling the cloud", func() {
			_, err := o.InitStorageConfig(ctx, StorageRequest{
				Region:  testRegion,
				Rule:    "billing",
				Network: &NetworkConfig{NetworkID: networkID},
			})
			Expect(err).To(MatchError(ErrInvalidNetworkConfig))
			Expect(cloud.Calls()).To(BeEmpty())
		})
	})

	Context("when a resource never becomes ready", func() {
		It("reports the mount target timeout", func() {
			cloud.MountTargetPendingPolls = -1

			_, err := o.InitStorageConfig(ctx, StorageRequest{Region: testRegion, Rule: "billing"})
			Expect(err).To(MatchError(nas.ErrMountTargetTimeout))
			Expect(err).To(MatchError(retry.ErrTimeout))
		})

		It("reports the subnet timeout with the subnet id", func() {
			cloud.SubnetPendingPolls = -1

			_, err := o.InitNetworkConfig(ctx, NetworkRequest{Region: testRegion, Rule: "billing"})
			Expect(err).To(MatchError(retry.ErrTimeout))
			Expect(err.Error()).To(ContainSubstring("subnet vsw-"))
			Expect(cloud.CallCount("CreateSecurityGroup")).To(BeZero())
		})
	})
})
