package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/unicmarket/goapi/base/ctx"
	"github.com/unicmarket/goapi/domain"
	mFunds "github.com/unicmarket/goapi/domain/funds/mocks"
	"github.com/unicmarket/goapi/domain/listing"
	mListing "github.com/unicmarket/goapi/domain/listing/mocks"
	"github.com/unicmarket/goapi/domain/registry"
	mRegistry "github.com/unicmarket/goapi/domain/registry/mocks"
	"github.com/unicmarket/goapi/domain/settlement"
)

type settlementSuite struct {
	suite.Suite

	repo     *mListing.Repo
	registry *mRegistry.Client
	funds    *mFunds.Transferer
	im       settlement.Usecase
}

func TestSettlementSuite(t *testing.T) {
	suite.Run(t, new(settlementSuite))
}

func (s *settlementSuite) SetupTest() {
	s.repo = &mListing.Repo{}
	s.registry = &mRegistry.Client{}
	s.funds = &mFunds.Transferer{}
	s.im = New(&SettlementUseCaseCfg{
		Listing:      s.repo,
		Registry:     s.registry,
		Funds:        s.funds,
		MaxLenPayout: 10,
	})
}

func (s *settlementSuite) id() listing.Id {
	return listing.Id{RegistryId: "nft.testnet", AssetId: "token-1"}
}

func (s *settlementSuite) endedAuction(winner string) *listing.Listing {
	now := time.Now().UnixNano()
	leader := domain.Account(winner)
	return &listing.Listing{
		Owner:      "alice.testnet",
		ApprovalId: 7,
		RegistryId: "nft.testnet",
		AssetId:    "token-1",
		Kind:       listing.KindAuction,
		Price:      "200",
		StartTime:  now - 2*int64(time.Hour),
		EndTime:    now - int64(time.Hour),
		Leader:     &leader,
	}
}

func (s *settlementSuite) payout(split map[domain.Account]domain.Amount) *registry.Payout {
	return &registry.Payout{Payout: split}
}

func (s *settlementSuite) TestAuctionPurchaseDistributes() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.repo.On("Remove", mock.Anything, s.id()).Return(l, nil)
	s.registry.On("TransferPayout", mock.Anything, domain.RegistryId("nft.testnet"), mock.Anything).
		Return(s.payout(map[domain.Account]domain.Amount{
			"alice.testnet":   "180",
			"creator.testnet": "20",
		}), nil)
	s.funds.On("Send", mock.Anything, domain.Account("alice.testnet"), domain.Amount("180")).Return()
	s.funds.On("Send", mock.Anything, domain.Account("creator.testnet"), domain.Amount("20")).Return()

	receipt, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.NoError(err)
	s.Equal(domain.Amount("200"), receipt.Price)

	res := <-receipt.Resolved
	s.Equal(settlement.OutcomeDistributed, res.Outcome)
	s.Equal(domain.Amount("200"), res.Amount)
	s.funds.AssertNumberOfCalls(s.T(), "Send", 2)

	req := s.registry.Calls[0].Arguments.Get(2).(*registry.TransferPayoutRequest)
	s.Equal(domain.Account("carol.testnet"), req.Buyer)
	s.Equal(domain.AssetId("token-1"), req.AssetId)
	s.Equal(uint64(7), req.ApprovalId)
	s.Equal(domain.Amount("200"), req.Price)
	s.Equal(uint32(10), req.MaxLenPayout)
}

func (s *settlementSuite) TestOverPricedPayoutRefunds() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.repo.On("Remove", mock.Anything, s.id()).Return(l, nil)
	// registry asks for 250 out of an escrowed 200
	s.registry.On("TransferPayout", mock.Anything, domain.RegistryId("nft.testnet"), mock.Anything).
		Return(s.payout(map[domain.Account]domain.Amount{
			"alice.testnet":   "230",
			"creator.testnet": "20",
		}), nil)
	s.funds.On("Send", mock.Anything, domain.Account("carol.testnet"), domain.Amount("200")).Return()

	receipt, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.NoError(err)

	res := <-receipt.Resolved
	s.Equal(settlement.OutcomeRefunded, res.Outcome)
	s.Equal(domain.Amount("200"), res.Amount)
	// only the refund moved, no recipient was paid
	s.funds.AssertNumberOfCalls(s.T(), "Send", 1)
}

func (s *settlementSuite) TestCallFailureRefunds() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.repo.On("Remove", mock.Anything, s.id()).Return(l, nil)
	s.registry.On("TransferPayout", mock.Anything, domain.RegistryId("nft.testnet"), mock.Anything).
		Return(nil, errors.New("registry unreachable"))
	s.funds.On("Send", mock.Anything, domain.Account("carol.testnet"), domain.Amount("200")).Return()

	receipt, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.NoError(err)

	res := <-receipt.Resolved
	s.Equal(settlement.OutcomeRefunded, res.Outcome)
}

func (s *settlementSuite) TestResolveToleratesRoundingUnit() {
	c := ctx.Background()
	s.funds.On("Send", mock.Anything, mock.Anything, mock.Anything).Return()

	// 3-way split of 100: 33+33+33 leaves remainder 1
	res := s.im.ResolvePurchase(c, "carol.testnet", "100", s.payout(map[domain.Account]domain.Amount{
		"a.testnet": "33",
		"b.testnet": "33",
		"c.testnet": "33",
	}), nil)
	s.Equal(settlement.OutcomeDistributed, res.Outcome)
}

func (s *settlementSuite) TestResolveRejectsShortPayout() {
	c := ctx.Background()
	s.funds.On("Send", mock.Anything, domain.Account("carol.testnet"), domain.Amount("100")).Return()

	// remainder 2 is out of tolerance
	res := s.im.ResolvePurchase(c, "carol.testnet", "100", s.payout(map[domain.Account]domain.Amount{
		"a.testnet": "49",
		"b.testnet": "49",
	}), nil)
	s.Equal(settlement.OutcomeRefunded, res.Outcome)
	s.funds.AssertCalled(s.T(), "Send", mock.Anything, domain.Account("carol.testnet"), domain.Amount("100"))
}

func (s *settlementSuite) TestResolveRejectsEmptyAndOverCap() {
	c := ctx.Background()
	s.funds.On("Send", mock.Anything, domain.Account("carol.testnet"), domain.Amount("100")).Return()

	res := s.im.ResolvePurchase(c, "carol.testnet", "100", s.payout(map[domain.Account]domain.Amount{}), nil)
	s.Equal(settlement.OutcomeRefunded, res.Outcome)

	res = s.im.ResolvePurchase(c, "carol.testnet", "100", nil, nil)
	s.Equal(settlement.OutcomeRefunded, res.Outcome)

	over := map[domain.Account]domain.Amount{}
	for i := 0; i < 11; i++ {
		over[domain.Account(string(rune('a'+i))+".testnet")] = "1"
	}
	res = s.im.ResolvePurchase(c, "carol.testnet", "100", s.payout(over), nil)
	s.Equal(settlement.OutcomeRefunded, res.Outcome)
}

func (s *settlementSuite) TestSecondPurchaseFindsNothing() {
	c := ctx.Background()

	s.repo.On("FindOne", mock.Anything, s.id()).Return(nil, domain.ErrNotFound)

	_, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.Equal(domain.ErrNotFound, err)
}

func (s *settlementSuite) TestAuctionNotOverRejected() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")
	l.EndTime = time.Now().UnixNano() + int64(time.Hour)

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.Equal(domain.ErrAuctionNotOver, err)
	s.repo.AssertNotCalled(s.T(), "Remove", mock.Anything, mock.Anything)
}

func (s *settlementSuite) TestOnlyWinnerMayBuyAuction() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.InitiatePurchase(c, s.id(), "mallory.testnet", "200")
	s.Equal(domain.ErrNotAuctionWinner, err)
}

func (s *settlementSuite) TestDepositMustCoverPrice() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "199")
	s.Equal(domain.ErrInsufficientDeposit, err)
}

func (s *settlementSuite) TestClaimedFlagsRejected() {
	c := ctx.Background()

	l := s.endedAuction("carol.testnet")
	l.IsAssetClaimed = true
	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil).Once()
	_, err := s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.Equal(domain.ErrAssetAlreadyClaimed, err)

	l2 := s.endedAuction("carol.testnet")
	l2.IsFundsClaimed = true
	s.repo.On("FindOne", mock.Anything, s.id()).Return(l2, nil).Once()
	_, err = s.im.InitiatePurchase(c, s.id(), "carol.testnet", "200")
	s.Equal(domain.ErrFundsAlreadyClaimed, err)
}

func (s *settlementSuite) TestSalePurchaseEscrowsAttachedDeposit() {
	c := ctx.Background()
	l := &listing.Listing{
		Owner:      "alice.testnet",
		ApprovalId: 7,
		RegistryId: "nft.testnet",
		AssetId:    "token-1",
		Kind:       listing.KindSale,
		Price:      "100",
	}

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)
	s.repo.On("Remove", mock.Anything, s.id()).Return(l, nil)
	s.registry.On("TransferPayout", mock.Anything, domain.RegistryId("nft.testnet"), mock.Anything).
		Return(s.payout(map[domain.Account]domain.Amount{"alice.testnet": "120"}), nil)
	s.funds.On("Send", mock.Anything, domain.Account("alice.testnet"), domain.Amount("120")).Return()

	// buyer attached 120 against a 100 listing; the registry splits 120
	receipt, err := s.im.InitiatePurchase(c, s.id(), "bob.testnet", "120")
	s.NoError(err)
	s.Equal(domain.Amount("120"), receipt.Price)

	res := <-receipt.Resolved
	s.Equal(settlement.OutcomeDistributed, res.Outcome)
}

func (s *settlementSuite) TestOwnerCannotBuy() {
	c := ctx.Background()
	l := s.endedAuction("carol.testnet")

	s.repo.On("FindOne", mock.Anything, s.id()).Return(l, nil)

	_, err := s.im.InitiatePurchase(c, s.id(), "alice.testnet", "200")
	s.Equal(domain.ErrSelfBid, err)
}
