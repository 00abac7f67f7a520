package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/base/ptr"
	"github.com/unicmarket/goapi/domain"
	"github.com/unicmarket/goapi/domain/deposit"
	mDeposit "github.com/unicmarket/goapi/domain/deposit/mocks"
	mFunds "github.com/unicmarket/goapi/domain/funds/mocks"
	"github.com/unicmarket/goapi/domain/listing"
	mListing "github.com/unicmarket/goapi/domain/listing/mocks"
)

type listingUseCaseSuite struct {
	suite.Suite

	repo    *mListing.Repo
	deposit *mDeposit.Repo
	funds   *mFunds.Transferer
	im      listing.Usecase
}

func TestListingUseCaseSuite(t *testing.T) {
	suite.Run(t, new(listingUseCaseSuite))
}

func (s *listingUseCaseSuite) SetupTest() {
	s.repo = &mListing.Repo{}
	s.deposit = &mDeposit.Repo{}
	s.funds = &mFunds.Transferer{}
	s.im = New(&ListingUseCaseCfg{
		Listing:           s.repo,
		Deposit:           s.deposit,
		Funds:             s.funds,
		StoragePerListing: "100",
		EnrollmentFee:     "10",
	})
}

func (s *listingUseCaseSuite) openAuction(owner string) *listing.Listing {
	now := time.Now().UnixNano()
	return &listing.Listing{
		Owner:      domain.Account(owner),
		ApprovalId: 1,
		RegistryId: "nft.testnet",
		AssetId:    "token-1",
		Kind:       listing.KindAuction,
		Price:      "100",
		StartTime:  now - int64(time.Hour),
		EndTime:    now + int64(time.Hour),
	}
}

func (s *listingUseCaseSuite) id() listing.Id {
	return listing.Id{RegistryId: "nft.testnet", AssetId: "token-1"}
}

func (s *listingUseCaseSuite) TestCreateSale() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, s.id()).Return(nil, domain.ErrNotFound)
	s.repo.On("CountByOwner", mock.Anything, domain.Account("alice.testnet")).Return(1, nil)
	s.deposit.On("Get", mock.Anything, domain.Account("alice.testnet")).Return(&deposit.Deposit{
		Account: "alice.testnet",
		Balance: "200",
	}, nil)
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := s.im.Create(c, &listing.CreateRequest{
		Registry:   "nft.testnet",
		Signer:     "alice.testnet",
		AssetId:    "token-1",
		Owner:      "alice.testnet",
		ApprovalId: 7,
		Msg:        `{"price":"100"}`,
	})
	s.NoError(err)
	s.Equal(listing.KindSale, l.Kind)
	s.Equal(domain.Amount("100"), l.Price)
	s.Nil(l.Leader)
	s.repo.AssertCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestCreateAuction() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, s.id()).Return(nil, domain.ErrNotFound)
	s.repo.On("CountByOwner", mock.Anything, domain.Account("alice.testnet")).Return(0, nil)
	s.deposit.On("Get", mock.Anything, domain.Account("alice.testnet")).Return(&deposit.Deposit{
		Account: "alice.testnet",
		Balance: "100",
	}, nil)
	s.repo.On("Insert", mock.Anything, mock.Anything).Return(nil)

	l, err := s.im.Create(c, &listing.CreateRequest{
		Registry:   "nft.testnet",
		Signer:     "alice.testnet",
		AssetId:    "token-1",
		Owner:      "alice.testnet",
		ApprovalId: 7,
		StartTime:  ptr.Int64(100),
		EndTime:    ptr.Int64(200),
		Msg:        `{"price":"100"}`,
	})
	s.NoError(err)
	s.Equal(listing.KindAuction, l.Kind)
	s.Equal(int64(100)*int64(time.Second), l.StartTime)
	s.Equal(int64(200)*int64(time.Second), l.EndTime)
}

func (s *listingUseCaseSuite) TestCreateRejectsDirectCall() {
	c := ctx.Background()

	// registry calling for itself means the callback was not cross-contract
	_, err := s.im.Create(c, &listing.CreateRequest{
		Registry: "nft.testnet",
		Signer:   "nft.testnet",
		AssetId:  "token-1",
		Owner:    "nft.testnet",
		Msg:      `{"price":"100"}`,
	})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *listingUseCaseSuite) TestCreateRejectsThirdPartyListing() {
	c := ctx.Background()

	_, err := s.im.Create(c, &listing.CreateRequest{
		Registry: "nft.testnet",
		Signer:   "mallory.testnet",
		AssetId:  "token-1",
		Owner:    "alice.testnet",
		Msg:      `{"price":"100"}`,
	})
	s.Equal(domain.ErrNotListingOwner, err)
}

func (s *listingUseCaseSuite) TestCreateRejectsInsufficientStorage() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, s.id()).Return(nil, domain.ErrNotFound)
	s.repo.On("CountByOwner", mock.Anything, domain.Account("alice.testnet")).Return(2, nil)
	s.deposit.On("Get", mock.Anything, domain.Account("alice.testnet")).Return(&deposit.Deposit{
		Account: "alice.testnet",
		Balance: "200",
	}, nil)

	// 3 listings would require 300 paid, only 200 there
	_, err := s.im.Create(c, &listing.CreateRequest{
		Registry: "nft.testnet",
		Signer:   "alice.testnet",
		AssetId:  "token-1",
		Owner:    "alice.testnet",
		Msg:      `{"price":"100"}`,
	})
	s.Equal(domain.ErrInsufficientStorage, err)
	s.repo.AssertNotCalled(s.T(), "Insert", mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestCreateRejectsMalformedMsg() {
	c := ctx.Background()

	_, err := s.im.Create(c, &listing.CreateRequest{
		Registry: "nft.testnet",
		Signer:   "alice.testnet",
		AssetId:  "token-1",
		Owner:    "alice.testnet",
		Msg:      `{"price":`,
	})
	s.Equal(domain.ErrInvalidJsonFormat, err)
}

func (s *listingUseCaseSuite) TestCreateRejectsDelimiterInId() {
	c := ctx.Background()

	_, err := s.im.Create(c, &listing.CreateRequest{
		Registry: "nft.testnet",
		Signer:   "alice.testnet",
		AssetId:  "token::1",
		Owner:    "alice.testnet",
		Msg:      `{"price":"100"}`,
	})
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *listingUseCaseSuite) TestFirstBidHasNoRefund() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.repo.On("Patch", mock.Anything, s.id(), mock.Anything).Return(nil)

	got, err := s.im.PlaceBid(c, s.id(), "bob.testnet", "150")
	s.NoError(err)
	s.Equal(domain.Amount("150"), got.Price)
	s.Equal(domain.Account("bob.testnet"), *got.Leader)
	s.funds.AssertNotCalled(s.T(), "Send", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestOutbidRefundsPreviousLeader() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")
	leader := domain.Account("bob.testnet")
	l.Price = "150"
	l.Leader = &leader

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.funds.On("Send", mock.Anything, leader, domain.Amount("140")).Return()
	s.repo.On("Patch", mock.Anything, s.id(), mock.Anything).Return(nil)

	got, err := s.im.PlaceBid(c, s.id(), "carol.testnet", "200")
	s.NoError(err)
	s.Equal(domain.Amount("200"), got.Price)
	s.Equal(domain.Account("carol.testnet"), *got.Leader)
	// previous leader got bid minus enrollment fee back
	s.funds.AssertCalled(s.T(), "Send", mock.Anything, leader, domain.Amount("140"))
}

func (s *listingUseCaseSuite) TestBidMustExceedPrice() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.PlaceBid(c, s.id(), "bob.testnet", "100")
	s.Equal(domain.ErrBidTooLow, err)
	s.repo.AssertNotCalled(s.T(), "Patch", mock.Anything, mock.Anything, mock.Anything)
}

func (s *listingUseCaseSuite) TestBidOutsideWindow() {
	c := ctx.Background()
	now := time.Now().UnixNano()

	early := s.openAuction("alice.testnet")
	early.StartTime = now + int64(time.Hour)
	early.EndTime = now + 2*int64(time.Hour)
	s.repo.On("FindOne", mock.Anything, s.id()).Return(early, nil).Once()
	_, err := s.im.PlaceBid(c, s.id(), "bob.testnet", "150")
	s.Equal(domain.ErrAuctionNotStarted, err)

	late := s.openAuction("alice.testnet")
	late.StartTime = now - 2*int64(time.Hour)
	late.EndTime = now - int64(time.Hour)
	s.repo.On("FindOne", mock.Anything, s.id()).Return(late, nil).Once()
	_, err = s.im.PlaceBid(c, s.id(), "bob.testnet", "150")
	s.Equal(domain.ErrAuctionEnded, err)
}

func (s *listingUseCaseSuite) TestOwnerCannotBid() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.PlaceBid(c, s.id(), "alice.testnet", "150")
	s.Equal(domain.ErrSelfBid, err)
}

func (s *listingUseCaseSuite) TestBidBelowFeeFloorRejected() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")
	l.Price = "2"

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	// above price but below the enrollment fee of 10
	_, err := s.im.PlaceBid(c, s.id(), "bob.testnet", "5")
	s.Equal(domain.ErrBidBelowFeeFloor, err)
}

func (s *listingUseCaseSuite) TestBidEqualToFeeAccepted() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")
	l.Price = "2"

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.repo.On("Patch", mock.Anything, s.id(), mock.Anything).Return(nil)

	got, err := s.im.PlaceBid(c, s.id(), "bob.testnet", "10")
	s.NoError(err)
	s.Equal(domain.Amount("10"), got.Price)

	// outbidding a leader at exactly the fee refunds zero, it never underflows
	leader := domain.Account("bob.testnet")
	l2 := s.openAuction("alice.testnet")
	l2.Price = "10"
	l2.Leader = &leader
	s.repo.ExpectedCalls = nil
	s.repo.On("FindOne", mock.Anything, s.id()).Return(l2, nil)
	s.funds.On("Send", mock.Anything, leader, domain.Amount("0")).Return()
	s.repo.On("Patch", mock.Anything, s.id(), mock.Anything).Return(nil)

	got, err = s.im.PlaceBid(c, s.id(), "carol.testnet", "20")
	s.NoError(err)
	s.Equal(domain.Amount("20"), got.Price)
	s.funds.AssertCalled(s.T(), "Send", mock.Anything, leader, domain.Amount("0"))
}

func (s *listingUseCaseSuite) TestBidOnSaleRejected() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")
	l.Kind = listing.KindSale

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.PlaceBid(c, s.id(), "bob.testnet", "150")
	s.Equal(domain.ErrBadParamInput, err)
}

func (s *listingUseCaseSuite) TestCancelRefundsLeader() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")
	leader := domain.Account("bob.testnet")
	l.Price = "300"
	l.Leader = &leader

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.funds.On("Send", mock.Anything, leader, domain.Amount("290")).Return()
	s.repo.On("Remove", mock.Anything, s.id()).Return(l, nil)

	removed, err := s.im.Cancel(c, s.id(), "alice.testnet", "1")
	s.NoError(err)
	s.Equal(l, removed)
	s.funds.AssertCalled(s.T(), "Send", mock.Anything, leader, domain.Amount("290"))
}

func (s *listingUseCaseSuite) TestCancelRequiresOneUnit() {
	c := ctx.Background()

	_, err := s.im.Cancel(c, s.id(), "alice.testnet", "2")
	s.Equal(domain.ErrOneUnitRequired, err)

	_, err = s.im.Cancel(c, s.id(), "alice.testnet", "0")
	s.Equal(domain.ErrOneUnitRequired, err)
}

func (s *listingUseCaseSuite) TestCancelOwnerOnly() {
	c := ctx.Background()
	l := s.openAuction("alice.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.Cancel(c, s.id(), "mallory.testnet", "1")
	s.Equal(domain.ErrNotListingOwner, err)
	s.repo.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}
