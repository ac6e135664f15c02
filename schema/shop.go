package schema

import propbin "github.com/reoring/propbin"

// EnumItemEffect is a gameplay effect granted while an item is held.
type EnumItemEffect interface{ itemEffect() }

// EnumShopFilter narrows the items shown in the shop grid.
type EnumShopFilter interface{ shopFilter() }

// EnumRecItemCondition gates one block of a recommended build.
type EnumRecItemCondition interface{ recItemCondition() }

// EnumShopPriceRule computes what an offer costs.
type EnumShopPriceRule interface{ shopPriceRule() }

// ItemRarity orders items in the shop grid.
type ItemRarity uint8

const (
	RarityBasic ItemRarity = iota
	RarityEpic
	RarityLegendary
	RarityMythic
	RarityConsumable
	RarityTrinket
)

// ItemData is one purchasable item. The stat modifiers are flat fields
// rather than a table so each keeps its own hash.
type ItemData struct {
	ItemID                          int32                                `bin:"itemID"`
	DisplayName                     *string                              `bin:"mDisplayName,optional"`
	ItemDataAvailability            *ItemDataAvailability                `bin:"mItemDataAvailability,optional"`
	ItemDataBuild                   *ItemDataBuild                       `bin:"mItemDataBuild,optional"`
	ItemDataClient                  *ItemDataClient                      `bin:"mItemDataClient,optional"`
	Price                           *int32                               `bin:"price,optional"`
	SellBackModifier                *float32                             `bin:"sellBackModifier,optional"`
	MaxStack                        *uint16                              `bin:"maxStack,optional"`
	Clickable                       *bool                                `bin:"clickable,optional"`
	Consumed                        *bool                                `bin:"consumed,optional"`
	ConsumeOnAcquire                *bool                                `bin:"consumeOnAcquire,optional"`
	UsableInStore                   *bool                                `bin:"usableInStore,optional"`
	CanBeSold                       *bool                                `bin:"canBeSold,optional"`
	IsRecipe                        *bool                                `bin:"isRecipe,optional"`
	InStore                         *bool                                `bin:"inStore,optional"`
	Rarity                          *ItemRarity                          `bin:"mRarity,optional"`
	Epicness                        *uint8                               `bin:"epicness,optional"`
	ItemGroups                      []propbin.Link                       `bin:"mItemGroups,optional"`
	Categories                      []string                             `bin:"mCategories,optional"`
	RequiredChampion                *string                              `bin:"requiredChampion,optional"`
	RequiredAlly                    *string                              `bin:"requiredAlly,optional"`
	RequiredLevel                   *uint8                               `bin:"requiredLevel,optional"`
	RequiredBuffCurrencyName        *string                              `bin:"requiredBuffCurrencyName,optional"`
	RequiredBuffCurrencyCost        *int32                               `bin:"requiredBuffCurrencyCost,optional"`
	SpecialRecipe                   *int32                               `bin:"specialRecipe,optional"`
	EffectAmounts                   []float32                            `bin:"mEffectAmounts,optional"`
	DataValues                      []SpellDataValue                     `bin:"mDataValues,optional"`
	ItemCalculations                map[propbin.Hash]EnumGameCalculation `bin:"mItemCalculations,optional"`
	Effects                         []EnumItemEffect                     `bin:"mEffects,optional"`
	Scripts                         []string                             `bin:"mScripts,optional"`
	BuildDepth                      *uint8                               `bin:"mBuildDepth,optional"`
	UniqueGroups                    []propbin.Link                       `bin:"mUniqueGroups,optional"`
	CooldownGroup                   *propbin.Link                        `bin:"mCooldownGroup,optional"`
	Stacking                        *ItemStackingRule                    `bin:"mStacking,optional"`
	Active                          *ItemActive                          `bin:"mActive,optional"`
	Passives                        []ItemPassive                        `bin:"mPassives,optional"`
	Aura                            *ItemAura                            `bin:"mAura,optional"`
	MythicBonus                     *ItemMythicBonus                     `bin:"mMythicBonus,optional"`
	Upgrade                         *ItemOrnnUpgrade                     `bin:"mUpgrade,optional"`
	Charges                         *ItemCharges                         `bin:"mCharges,optional"`
	Evolution                       *ItemEvolution                       `bin:"mEvolution,optional"`
	Consumable                      *ItemConsumable                      `bin:"mConsumable,optional"`
	Trinket                         *ItemTrinket                         `bin:"mTrinket,optional"`
	FlatHPPoolMod                   *float32                             `bin:"flatHPPoolMod,optional"`
	PercentHPPoolMod                *float32                             `bin:"percentHPPoolMod,optional"`
	FlatMPPoolMod                   *float32                             `bin:"flatMPPoolMod,optional"`
	PercentMPPoolMod                *float32                             `bin:"percentMPPoolMod,optional"`
	FlatHPRegenMod                  *float32                             `bin:"flatHPRegenMod,optional"`
	PercentHPRegenMod               *float32                             `bin:"percentHPRegenMod,optional"`
	FlatMPRegenMod                  *float32                             `bin:"flatMPRegenMod,optional"`
	PercentMPRegenMod               *float32                             `bin:"percentMPRegenMod,optional"`
	FlatArmorMod                    *float32                             `bin:"flatArmorMod,optional"`
	PercentArmorMod                 *float32                             `bin:"percentArmorMod,optional"`
	FlatSpellBlockMod               *float32                             `bin:"flatSpellBlockMod,optional"`
	PercentSpellBlockMod            *float32                             `bin:"percentSpellBlockMod,optional"`
	FlatPhysicalDamageMod           *float32                             `bin:"flatPhysicalDamageMod,optional"`
	PercentPhysicalDamageMod        *float32                             `bin:"percentPhysicalDamageMod,optional"`
	FlatMagicDamageMod              *float32                             `bin:"flatMagicDamageMod,optional"`
	PercentMagicDamageMod           *float32                             `bin:"percentMagicDamageMod,optional"`
	FlatMovementSpeedMod            *float32                             `bin:"flatMovementSpeedMod,optional"`
	PercentMovementSpeedMod         *float32                             `bin:"percentMovementSpeedMod,optional"`
	FlatAttackSpeedMod              *float32                             `bin:"flatAttackSpeedMod,optional"`
	PercentAttackSpeedMod           *float32                             `bin:"percentAttackSpeedMod,optional"`
	FlatCritChanceMod               *float32                             `bin:"flatCritChanceMod,optional"`
	PercentCritChanceMod            *float32                             `bin:"percentCritChanceMod,optional"`
	FlatCritDamageMod               *float32                             `bin:"flatCritDamageMod,optional"`
	PercentCritDamageMod            *float32                             `bin:"percentCritDamageMod,optional"`
	FlatLifeStealMod                *float32                             `bin:"flatLifeStealMod,optional"`
	PercentLifeStealMod             *float32                             `bin:"percentLifeStealMod,optional"`
	FlatSpellVampMod                *float32                             `bin:"flatSpellVampMod,optional"`
	PercentSpellVampMod             *float32                             `bin:"percentSpellVampMod,optional"`
	FlatArmorPenetrationMod         *float32                             `bin:"flatArmorPenetrationMod,optional"`
	PercentArmorPenetrationMod      *float32                             `bin:"percentArmorPenetrationMod,optional"`
	FlatMagicPenetrationMod         *float32                             `bin:"flatMagicPenetrationMod,optional"`
	PercentMagicPenetrationMod      *float32                             `bin:"percentMagicPenetrationMod,optional"`
	FlatLethalityMod                *float32                             `bin:"flatLethalityMod,optional"`
	PercentLethalityMod             *float32                             `bin:"percentLethalityMod,optional"`
	FlatAbilityHasteMod             *float32                             `bin:"flatAbilityHasteMod,optional"`
	PercentAbilityHasteMod          *float32                             `bin:"percentAbilityHasteMod,optional"`
	FlatTenacityMod                 *float32                             `bin:"flatTenacityMod,optional"`
	PercentTenacityMod              *float32                             `bin:"percentTenacityMod,optional"`
	FlatHealShieldPowerMod          *float32                             `bin:"flatHealShieldPowerMod,optional"`
	PercentHealShieldPowerMod       *float32                             `bin:"percentHealShieldPowerMod,optional"`
	FlatOmnivampMod                 *float32                             `bin:"flatOmnivampMod,optional"`
	PercentOmnivampMod              *float32                             `bin:"percentOmnivampMod,optional"`
	FlatAttackRangeMod              *float32                             `bin:"flatAttackRangeMod,optional"`
	PercentAttackRangeMod           *float32                             `bin:"percentAttackRangeMod,optional"`
	FlatGoldPer10Mod                *float32                             `bin:"flatGoldPer10Mod,optional"`
	PercentGoldPer10Mod             *float32                             `bin:"percentGoldPer10Mod,optional"`
	FlatSlowResistMod               *float32                             `bin:"flatSlowResistMod,optional"`
	PercentSlowResistMod            *float32                             `bin:"percentSlowResistMod,optional"`
	FlatCastRangeMod                *float32                             `bin:"flatCastRangeMod,optional"`
	PercentCastRangeMod             *float32                             `bin:"percentCastRangeMod,optional"`
	FlatPhysicalVampMod             *float32                             `bin:"flatPhysicalVampMod,optional"`
	PercentPhysicalVampMod          *float32                             `bin:"percentPhysicalVampMod,optional"`
	FlatBonusArmorPenetrationMod    *float32                             `bin:"flatBonusArmorPenetrationMod,optional"`
	PercentBonusArmorPenetrationMod *float32                             `bin:"percentBonusArmorPenetrationMod,optional"`
	FlatBonusMagicPenetrationMod    *float32                             `bin:"flatBonusMagicPenetrationMod,optional"`
	PercentBonusMagicPenetrationMod *float32                             `bin:"percentBonusMagicPenetrationMod,optional"`
	FlatHPPoolModPerLevel           *float32                             `bin:"flatHPPoolModPerLevel,optional"`
	FlatMPPoolModPerLevel           *float32                             `bin:"flatMPPoolModPerLevel,optional"`
	FlatArmorModPerLevel            *float32                             `bin:"flatArmorModPerLevel,optional"`
	FlatSpellBlockModPerLevel       *float32                             `bin:"flatSpellBlockModPerLevel,optional"`
	FlatPhysicalDamageModPerLevel   *float32                             `bin:"flatPhysicalDamageModPerLevel,optional"`
	FlatMagicDamageModPerLevel      *float32                             `bin:"flatMagicDamageModPerLevel,optional"`
	FlatAbilityHasteModPerLevel     *float32                             `bin:"flatAbilityHasteModPerLevel,optional"`
}

type ItemDataAvailability struct {
	InStore     *bool    `bin:"mInStore,optional"`
	Hidden      *bool    `bin:"mHidden,optional"`
	ForceLoad   *bool    `bin:"mForceLoad,optional"`
	HideFromAll *bool    `bin:"mHideFromAll,optional"`
	Maps        []uint32 `bin:"mMaps,optional"`
	Modes       []string `bin:"mModes,optional"`
	Queues      []uint32 `bin:"mQueues,optional"`
}

type ItemDataBuild struct {
	From          []int32 `bin:"mFrom,optional"`
	To            []int32 `bin:"mTo,optional"`
	Depth         *uint8  `bin:"mDepth,optional"`
	CombineCost   *int32  `bin:"mCombineCost,optional"`
	SpecialRecipe *int32  `bin:"mSpecialRecipe,optional"`
}

type ItemDataClient struct {
	InventoryIcon       *string        `bin:"mInventoryIcon,optional"`
	ShopTooltip         *string        `bin:"mShopTooltip,optional"`
	Description         *string        `bin:"mDescription,optional"`
	PlainText           *string        `bin:"mPlainText,optional"`
	TooltipCalculations []propbin.Link `bin:"mTooltipCalculations,optional"`
	FlavorText          *string        `bin:"mFlavorText,optional"`
	Colloq              *string        `bin:"mColloq,optional"`
	ShopIconScale       *float32       `bin:"mShopIconScale,optional"`
	Tags                []string       `bin:"mTags,optional"`
}

type ItemGroup struct {
	ItemGroupID                    propbin.Hash   `bin:"mItemGroupID"`
	MaxGroupOwnable                *int8          `bin:"mMaxGroupOwnable,optional"`
	PurchaseCooldown               *float32       `bin:"mPurchaseCooldown,optional"`
	InventorySlotMin               *int8          `bin:"mInventorySlotMin,optional"`
	InventorySlotMax               *int8          `bin:"mInventorySlotMax,optional"`
	ItemModifiers                  []propbin.Link `bin:"mItemModifiers,optional"`
	CooldownExtendedByAmmoRecharge *bool          `bin:"mCooldownExtendedByAmmoRecharge,optional"`
}

type ItemStackingRule struct {
	MaxStacks       *uint16       `bin:"mMaxStacks,optional"`
	StacksWithSelf  *bool         `bin:"mStacksWithSelf,optional"`
	StacksWithGroup *propbin.Link `bin:"mStacksWithGroup,optional"`
	ReplaceLowest   *bool         `bin:"mReplaceLowest,optional"`
}

type ItemAura struct {
	Radius         *float32      `bin:"mRadius,optional"`
	AffectsAllies  *bool         `bin:"mAffectsAllies,optional"`
	AffectsEnemies *bool         `bin:"mAffectsEnemies,optional"`
	AffectsSelf    *bool         `bin:"mAffectsSelf,optional"`
	Buff           *propbin.Link `bin:"mBuff,optional"`
	PulseInterval  *float32      `bin:"mPulseInterval,optional"`
}

type ItemPassive struct {
	Name              string           `bin:"mName"`
	Unique            *bool            `bin:"mUnique,optional"`
	Buff              *propbin.Link    `bin:"mBuff,optional"`
	Cooldown          *float32         `bin:"mCooldown,optional"`
	DescriptionTraKey *string          `bin:"mDescriptionTraKey,optional"`
	Effects           []EnumItemEffect `bin:"mEffects,optional"`
}

type ItemActive struct {
	Name               string            `bin:"mName"`
	Spell              *propbin.Link     `bin:"mSpell,optional"`
	Cooldown           *float32          `bin:"mCooldown,optional"`
	SharesCooldownWith *propbin.Link     `bin:"mSharesCooldownWith,optional"`
	CastRange          *float32          `bin:"mCastRange,optional"`
	Targeting          EnumTargetingType `bin:"mTargeting,optional"`
}

type ItemMythicBonus struct {
	Stats             map[propbin.Hash]float32 `bin:"mStats,optional"`
	PerLegendary      *bool                    `bin:"mPerLegendary,optional"`
	DescriptionTraKey *string                  `bin:"mDescriptionTraKey,optional"`
}

type ItemOrnnUpgrade struct {
	UpgradedItem  int32  `bin:"mUpgradedItem"`
	RequiredLevel *uint8 `bin:"mRequiredLevel,optional"`
	Cost          *int32 `bin:"mCost,optional"`
}

type ItemCharges struct {
	MaxCharges      *uint8   `bin:"mMaxCharges,optional"`
	StartingCharges *uint8   `bin:"mStartingCharges,optional"`
	RechargeTime    *float32 `bin:"mRechargeTime,optional"`
	ConsumeOnUse    *bool    `bin:"mConsumeOnUse,optional"`
}

type ItemEvolution struct {
	EvolvesInto      int32         `bin:"mEvolvesInto"`
	StackRequirement *uint16       `bin:"mStackRequirement,optional"`
	StackBuff        *propbin.Link `bin:"mStackBuff,optional"`
	TimeRequirement  *float32      `bin:"mTimeRequirement,optional"`
}

type ItemConsumable struct {
	Buff           *propbin.Link `bin:"mBuff,optional"`
	Duration       *float32      `bin:"mDuration,optional"`
	MaxInInventory *uint8        `bin:"mMaxInInventory,optional"`
	SharesSlot     *bool         `bin:"mSharesSlot,optional"`
	RemoveOnUse    *bool         `bin:"mRemoveOnUse,optional"`
}

type ItemTrinket struct {
	Spell        propbin.Link `bin:"mSpell"`
	SwapCooldown *float32     `bin:"mSwapCooldown,optional"`
	LevelScaling []float32    `bin:"mLevelScaling,optional"`
}

type ItemEffectStat struct {
	Stat     uint8    `bin:"mStat"`
	Value    *float32 `bin:"mValue,optional"`
	Percent  *bool    `bin:"mPercent,optional"`
	PerLevel *bool    `bin:"mPerLevel,optional"`
}

type ItemEffectBuff struct {
	Buff         propbin.Link `bin:"mBuff"`
	Duration     *float32     `bin:"mDuration,optional"`
	Stacks       *uint16      `bin:"mStacks,optional"`
	OnlyInCombat *bool        `bin:"mOnlyInCombat,optional"`
}

type ItemEffectSpell struct {
	Spell  propbin.Link `bin:"mSpell"`
	Chance *float32     `bin:"mChance,optional"`
}

type ItemEffectOnHit struct {
	Damage           EnumGameCalculation `bin:"mDamage,optional"`
	DamageType       *uint8              `bin:"mDamageType,optional"`
	AppliesToTowers  *bool               `bin:"mAppliesToTowers,optional"`
	RangedMultiplier *float32            `bin:"mRangedMultiplier,optional"`
}

type ItemEffectShield struct {
	Amount          EnumGameCalculation `bin:"mAmount,optional"`
	Duration        *float32            `bin:"mDuration,optional"`
	Cooldown        *float32            `bin:"mCooldown,optional"`
	HealthThreshold *float32            `bin:"mHealthThreshold,optional"`
}

type ItemEffectHeal struct {
	Amount   EnumGameCalculation `bin:"mAmount,optional"`
	OverTime *float32            `bin:"mOverTime,optional"`
	OnKill   *bool               `bin:"mOnKill,optional"`
}

type ItemEffectMovementBurst struct {
	Percent  *float32 `bin:"mPercent,optional"`
	Duration *float32 `bin:"mDuration,optional"`
	Decays   *bool    `bin:"mDecays,optional"`
}

type ItemEffectCooldownRefund struct {
	Slots      []uint8  `bin:"mSlots,optional"`
	Percent    *float32 `bin:"mPercent,optional"`
	OnTakedown *bool    `bin:"mOnTakedown,optional"`
}

type ItemEffectGoldGeneration struct {
	GoldPer10      *float32 `bin:"mGoldPer10,optional"`
	QuestThreshold *int32   `bin:"mQuestThreshold,optional"`
	UpgradeItem    *int32   `bin:"mUpgradeItem,optional"`
}

type ItemEffectDamageAmp struct {
	Percent          *float32 `bin:"mPercent,optional"`
	VersusChampions  *bool    `bin:"mVersusChampions,optional"`
	VersusMonsters   *bool    `bin:"mVersusMonsters,optional"`
	VersusStructures *bool    `bin:"mVersusStructures,optional"`
}

type ShopFilterByStat struct {
	Stat    uint8    `bin:"mStat"`
	Minimum *float32 `bin:"mMinimum,optional"`
}

type ShopFilterByTag struct {
	Tag string `bin:"mTag"`
}

type ShopFilterByPrice struct {
	Min *int32 `bin:"mMin,optional"`
	Max *int32 `bin:"mMax,optional"`
}

type ShopFilterByRole struct {
	Role uint8 `bin:"mRole"`
}

type ShopFilterByMap struct {
	MapID uint32 `bin:"mMapID"`
}

type ShopFilterByMode struct {
	Mode string `bin:"mMode"`
}

type ShopFilterByRarity struct {
	Rarity ItemRarity `bin:"mRarity"`
}

type ShopFilterOwned struct{}

type ShopFilterPurchasable struct {
	IncludeRecipes *bool `bin:"mIncludeRecipes,optional"`
}

type ShopFilterAll struct{}

type ShopFilterAnd struct {
	Filters []EnumShopFilter `bin:"mFilters"`
}

type ShopFilterOr struct {
	Filters []EnumShopFilter `bin:"mFilters"`
}

type ShopFilterNot struct {
	Filter EnumShopFilter `bin:"mFilter"`
}

type RecItemConditionChampion struct {
	Champion string `bin:"mChampion"`
}

type RecItemConditionRole struct {
	Role uint8 `bin:"mRole"`
}

type RecItemConditionMap struct {
	MapID uint32 `bin:"mMapID"`
}

type RecItemConditionGameTime struct {
	AfterSeconds  *float32 `bin:"mAfterSeconds,optional"`
	BeforeSeconds *float32 `bin:"mBeforeSeconds,optional"`
}

type RecItemConditionEnemyDamage struct {
	DamageType uint8    `bin:"mDamageType"`
	Threshold  *float32 `bin:"mThreshold,optional"`
}

type RecItemConditionOwnsItem struct {
	ItemID int32 `bin:"mItemID"`
	Invert *bool `bin:"mInvert,optional"`
}

type RecItemConditionAlways struct{}

// RecItemList is a recommended build shown in the shop.
type RecItemList struct {
	Champion            string         `bin:"mChampion"`
	Map                 *uint32        `bin:"mMap,optional"`
	Mode                *string        `bin:"mMode,optional"`
	Blocks              []RecItemBlock `bin:"mBlocks,optional"`
	Priority            *int32         `bin:"mPriority,optional"`
	UseObviousCheckmark *bool          `bin:"mUseObviousCheckmark,optional"`
	SortRank            *uint8         `bin:"mSortRank,optional"`
}

type RecItemBlock struct {
	Type                string                 `bin:"mType"`
	Items               []RecItemItem          `bin:"mItems,optional"`
	Conditions          []EnumRecItemCondition `bin:"mConditions,optional"`
	HideIfSummonerSpell *string                `bin:"mHideIfSummonerSpell,optional"`
	ShowIfSummonerSpell *string                `bin:"mShowIfSummonerSpell,optional"`
	RecMath             *bool                  `bin:"mRecMath,optional"`
}

type RecItemItem struct {
	ItemID      int32  `bin:"mItemID"`
	Count       *uint8 `bin:"mCount,optional"`
	HideIfOwned *bool  `bin:"mHideIfOwned,optional"`
}

type ShopPriceFixed struct {
	Price int32 `bin:"mPrice"`
}

type ShopPriceDiscounted struct {
	BasePrice       int32    `bin:"mBasePrice"`
	DiscountPercent *float32 `bin:"mDiscountPercent,optional"`
}

type ShopPriceScaled struct {
	BasePrice int32    `bin:"mBasePrice"`
	PerLevel  *float32 `bin:"mPerLevel,optional"`
	PerMinute *float32 `bin:"mPerMinute,optional"`
}

type ShopPriceFree struct{}

type ShopCurrencyDef struct {
	Name           string  `bin:"mName"`
	Icon           *string `bin:"mIcon,optional"`
	MaxAmount      *int32  `bin:"mMaxAmount,optional"`
	StartingAmount *int32  `bin:"mStartingAmount,optional"`
	ShowInHud      *bool   `bin:"mShowInHud,optional"`
}

type ShopCurrencyCost struct {
	Currency propbin.Link `bin:"mCurrency"`
	Amount   int32        `bin:"mAmount"`
}

type ShopOffer struct {
	OfferID   propbin.Hash       `bin:"mOfferID"`
	ItemID    *int32             `bin:"mItemID,optional"`
	Price     EnumShopPriceRule  `bin:"mPrice,optional"`
	Costs     []ShopCurrencyCost `bin:"mCosts,optional"`
	StartTime *float32           `bin:"mStartTime,optional"`
	EndTime   *float32           `bin:"mEndTime,optional"`
	Stock     *int32             `bin:"mStock,optional"`
	Filters   []EnumShopFilter   `bin:"mFilters,optional"`
}

type ShopBundleOffer struct {
	OfferID     propbin.Hash      `bin:"mOfferID"`
	Items       []int32           `bin:"mItems,optional"`
	Price       EnumShopPriceRule `bin:"mPrice,optional"`
	SavingsText *string           `bin:"mSavingsText,optional"`
}

type ShopStorefront struct {
	Name        string            `bin:"mName"`
	Offers      []ShopOffer       `bin:"mOffers,optional"`
	Bundles     []ShopBundleOffer `bin:"mBundles,optional"`
	RefreshTime *float32          `bin:"mRefreshTime,optional"`
	RerollCost  *int32            `bin:"mRerollCost,optional"`
}

type ShopItemCategory struct {
	Name      string         `bin:"mName"`
	TraKey    *string        `bin:"mTraKey,optional"`
	Icon      *string        `bin:"mIcon,optional"`
	Filter    EnumShopFilter `bin:"mFilter,optional"`
	SortOrder *int32         `bin:"mSortOrder,optional"`
}

type ShopCategoryTab struct {
	Name       string             `bin:"mName"`
	Categories []ShopItemCategory `bin:"mCategories,optional"`
	Default    *bool              `bin:"mDefault,optional"`
}

type ShopLayoutData struct {
	Tabs        []ShopCategoryTab `bin:"mTabs,optional"`
	GridColumns *uint16           `bin:"mGridColumns,optional"`
	CellSize    *propbin.Vec2     `bin:"mCellSize,optional"`
	GridCells   []ShopGridCell    `bin:"mGridCells,optional"`
}

type ShopGridCell struct {
	ItemID int32   `bin:"mItemID"`
	Column *uint16 `bin:"mColumn,optional"`
	Row    *uint16 `bin:"mRow,optional"`
}

type ShopSearchAlias struct {
	Alias string  `bin:"mAlias"`
	Items []int32 `bin:"mItems,optional"`
}

type ShopQuickBuySlot struct {
	Slot   uint8  `bin:"mSlot"`
	ItemID *int32 `bin:"mItemID,optional"`
}

type ShopUndoPolicy struct {
	MaxUndo              *uint8 `bin:"mMaxUndo,optional"`
	ResetOnLeaveFountain *bool  `bin:"mResetOnLeaveFountain,optional"`
	ResetOnDamage        *bool  `bin:"mResetOnDamage,optional"`
}

type ShopSellPolicy struct {
	SellRatio    *float32 `bin:"mSellRatio,optional"`
	RefundWindow *float32 `bin:"mRefundWindow,optional"`
	RefundRatio  *float32 `bin:"mRefundRatio,optional"`
}

type ShopInventoryRules struct {
	MaxSlots      *uint8 `bin:"mMaxSlots,optional"`
	TrinketSlots  *uint8 `bin:"mTrinketSlots,optional"`
	QuestSlots    *uint8 `bin:"mQuestSlots,optional"`
	AllowOverflow *bool  `bin:"mAllowOverflow,optional"`
}

type ShopKeeperLines struct {
	Greeting []string `bin:"mGreeting,optional"`
	Purchase []string `bin:"mPurchase,optional"`
	Sell     []string `bin:"mSell,optional"`
	Idle     []string `bin:"mIdle,optional"`
	Cooldown *float32 `bin:"mCooldown,optional"`
}

type ShopSoundEvents struct {
	Open  *string `bin:"mOpen,optional"`
	Close *string `bin:"mClose,optional"`
	Buy   *string `bin:"mBuy,optional"`
	Sell  *string `bin:"mSell,optional"`
	Undo  *string `bin:"mUndo,optional"`
	Error *string `bin:"mError,optional"`
}

type ItemCooldownGroup struct {
	Name     string   `bin:"mName"`
	Cooldown *float32 `bin:"mCooldown,optional"`
	Items    []int32  `bin:"mItems,optional"`
}

type ItemUniqueGroup struct {
	Name     string  `bin:"mName"`
	MaxOwned *uint8  `bin:"mMaxOwned,optional"`
	Items    []int32 `bin:"mItems,optional"`
}

// ShopData configures the item shop for a map and mode.
type ShopData struct {
	DefaultLayout            *propbin.Link                   `bin:"mDefaultLayout,optional"`
	Storefronts              []propbin.Link                  `bin:"mStorefronts,optional"`
	Currencies               []propbin.Link                  `bin:"mCurrencies,optional"`
	Filters                  map[propbin.Hash]EnumShopFilter `bin:"mFilters,optional"`
	SearchAliases            []ShopSearchAlias               `bin:"mSearchAliases,optional"`
	QuickBuy                 []ShopQuickBuySlot              `bin:"mQuickBuy,optional"`
	Undo                     *ShopUndoPolicy                 `bin:"mUndo,optional"`
	Sell                     *ShopSellPolicy                 `bin:"mSell,optional"`
	Inventory                *ShopInventoryRules             `bin:"mInventory,optional"`
	KeeperLines              *ShopKeeperLines                `bin:"mKeeperLines,optional"`
	Sounds                   *ShopSoundEvents                `bin:"mSounds,optional"`
	BuyAnywhere              *bool                           `bin:"mBuyAnywhere,optional"`
	BuyDistance              *float32                        `bin:"mBuyDistance,optional"`
	ShowRecommended          *bool                           `bin:"mShowRecommended,optional"`
	RecommendedLists         []propbin.Link                  `bin:"mRecommendedLists,optional"`
	StartingGold             *int32                          `bin:"mStartingGold,optional"`
	MaxGold                  *int32                          `bin:"mMaxGold,optional"`
	GoldIncomeStart          *float32                        `bin:"mGoldIncomeStart,optional"`
	GoldPer10                *float32                        `bin:"mGoldPer10,optional"`
	ShopCloseOnDeath         *bool                           `bin:"mShopCloseOnDeath,optional"`
	FountainRadius           *float32                        `bin:"mFountainRadius,optional"`
	ShowPrices               *bool                           `bin:"mShowPrices,optional"`
	ShowBuildPaths           *bool                           `bin:"mShowBuildPaths,optional"`
	ShowStats                *bool                           `bin:"mShowStats,optional"`
	ShowTags                 *bool                           `bin:"mShowTags,optional"`
	ShowFlavor               *bool                           `bin:"mShowFlavor,optional"`
	ShowOwned                *bool                           `bin:"mShowOwned,optional"`
	ShowLocked               *bool                           `bin:"mShowLocked,optional"`
	ShowMythics              *bool                           `bin:"mShowMythics,optional"`
	ShowOrnnItems            *bool                           `bin:"mShowOrnnItems,optional"`
	ShowConsumables          *bool                           `bin:"mShowConsumables,optional"`
	ShowTrinkets             *bool                           `bin:"mShowTrinkets,optional"`
	ShowBoots                *bool                           `bin:"mShowBoots,optional"`
	ShowJungleItems          *bool                           `bin:"mShowJungleItems,optional"`
	ShowSupportItems         *bool                           `bin:"mShowSupportItems,optional"`
	AllowFavorites           *bool                           `bin:"mAllowFavorites,optional"`
	AllowUndo                *bool                           `bin:"mAllowUndo,optional"`
	AllowSell                *bool                           `bin:"mAllowSell,optional"`
	AllowQuickBuy            *bool                           `bin:"mAllowQuickBuy,optional"`
	AllowSearch              *bool                           `bin:"mAllowSearch,optional"`
	AllowHotkeys             *bool                           `bin:"mAllowHotkeys,optional"`
	AllowDragToBuy           *bool                           `bin:"mAllowDragToBuy,optional"`
	AllowRightClickBuy       *bool                           `bin:"mAllowRightClickBuy,optional"`
	AllowShiftClickSell      *bool                           `bin:"mAllowShiftClickSell,optional"`
	AllowBuyFromMinimap      *bool                           `bin:"mAllowBuyFromMinimap,optional"`
	AllowBuyWhileDead        *bool                           `bin:"mAllowBuyWhileDead,optional"`
	HighlightAffordable      *bool                           `bin:"mHighlightAffordable,optional"`
	HighlightUpgrades        *bool                           `bin:"mHighlightUpgrades,optional"`
	HighlightRecommended     *bool                           `bin:"mHighlightRecommended,optional"`
	AutoOpenOnSpawn          *bool                           `bin:"mAutoOpenOnSpawn,optional"`
	AutoOpenOnDeath          *bool                           `bin:"mAutoOpenOnDeath,optional"`
	AutoCloseOnMove          *bool                           `bin:"mAutoCloseOnMove,optional"`
	RememberTab              *bool                           `bin:"mRememberTab,optional"`
	RememberScroll           *bool                           `bin:"mRememberScroll,optional"`
	RememberSearch           *bool                           `bin:"mRememberSearch,optional"`
	CompactMode              *bool                           `bin:"mCompactMode,optional"`
	LargeIcons               *bool                           `bin:"mLargeIcons,optional"`
	SortByPrice              *bool                           `bin:"mSortByPrice,optional"`
	SortByName               *bool                           `bin:"mSortByName,optional"`
	SortByDepth              *bool                           `bin:"mSortByDepth,optional"`
	GroupByCategory          *bool                           `bin:"mGroupByCategory,optional"`
	GroupByStat              *bool                           `bin:"mGroupByStat,optional"`
	ShowGoldDelta            *bool                           `bin:"mShowGoldDelta,optional"`
	ShowItemCooldowns        *bool                           `bin:"mShowItemCooldowns,optional"`
	ShowComponentCount       *bool                           `bin:"mShowComponentCount,optional"`
	ShowRecipeCost           *bool                           `bin:"mShowRecipeCost,optional"`
	ShowSellPrice            *bool                           `bin:"mShowSellPrice,optional"`
	ShowStackCount           *bool                           `bin:"mShowStackCount,optional"`
	ShowMapRestrictions      *bool                           `bin:"mShowMapRestrictions,optional"`
	ShowModeRestrictions     *bool                           `bin:"mShowModeRestrictions,optional"`
	ShowChampionRestrictions *bool                           `bin:"mShowChampionRestrictions,optional"`
	ShowAllyRestrictions     *bool                           `bin:"mShowAllyRestrictions,optional"`
	ShowUniqueWarnings       *bool                           `bin:"mShowUniqueWarnings,optional"`
	ShowGroupWarnings        *bool                           `bin:"mShowGroupWarnings,optional"`
	ShowPurchaseHistory      *bool                           `bin:"mShowPurchaseHistory,optional"`
	ShowTeamPurchases        *bool                           `bin:"mShowTeamPurchases,optional"`
	ShowEnemyPurchases       *bool                           `bin:"mShowEnemyPurchases,optional"`
	PlayPurchaseSound        *bool                           `bin:"mPlayPurchaseSound,optional"`
	PlaySellSound            *bool                           `bin:"mPlaySellSound,optional"`
	PlayUndoSound            *bool                           `bin:"mPlayUndoSound,optional"`
	PlayErrorSound           *bool                           `bin:"mPlayErrorSound,optional"`
}

func (*ItemEffectStat) itemEffect()           {}
func (*ItemEffectBuff) itemEffect()           {}
func (*ItemEffectSpell) itemEffect()          {}
func (*ItemEffectOnHit) itemEffect()          {}
func (*ItemEffectShield) itemEffect()         {}
func (*ItemEffectHeal) itemEffect()           {}
func (*ItemEffectMovementBurst) itemEffect()  {}
func (*ItemEffectCooldownRefund) itemEffect() {}
func (*ItemEffectGoldGeneration) itemEffect() {}
func (*ItemEffectDamageAmp) itemEffect()      {}

func (*ShopFilterByStat) shopFilter()      {}
func (*ShopFilterByTag) shopFilter()       {}
func (*ShopFilterByPrice) shopFilter()     {}
func (*ShopFilterByRole) shopFilter()      {}
func (*ShopFilterByMap) shopFilter()       {}
func (*ShopFilterByMode) shopFilter()      {}
func (*ShopFilterByRarity) shopFilter()    {}
func (*ShopFilterOwned) shopFilter()       {}
func (*ShopFilterPurchasable) shopFilter() {}
func (*ShopFilterAll) shopFilter()         {}
func (*ShopFilterAnd) shopFilter()         {}
func (*ShopFilterOr) shopFilter()          {}
func (*ShopFilterNot) shopFilter()         {}

func (*RecItemConditionChampion) recItemCondition()    {}
func (*RecItemConditionRole) recItemCondition()        {}
func (*RecItemConditionMap) recItemCondition()         {}
func (*RecItemConditionGameTime) recItemCondition()    {}
func (*RecItemConditionEnemyDamage) recItemCondition() {}
func (*RecItemConditionOwnsItem) recItemCondition()    {}
func (*RecItemConditionAlways) recItemCondition()      {}

func (*ShopPriceFixed) shopPriceRule()      {}
func (*ShopPriceDiscounted) shopPriceRule() {}
func (*ShopPriceScaled) shopPriceRule()     {}
func (*ShopPriceFree) shopPriceRule()       {}

func registerShop(b *propbin.Builder) {
	propbin.Record[ItemData](b, "ItemData", propbin.AsAsset())
	propbin.Record[ItemDataAvailability](b, "ItemDataAvailability")
	propbin.Record[ItemDataBuild](b, "ItemDataBuild")
	propbin.Record[ItemDataClient](b, "ItemDataClient")
	propbin.Record[ItemGroup](b, "ItemGroup", propbin.AsAsset())
	propbin.Record[ItemStackingRule](b, "ItemStackingRule")
	propbin.Record[ItemAura](b, "ItemAura")
	propbin.Record[ItemPassive](b, "ItemPassive")
	propbin.Record[ItemActive](b, "ItemActive")
	propbin.Record[ItemMythicBonus](b, "ItemMythicBonus")
	propbin.Record[ItemOrnnUpgrade](b, "ItemOrnnUpgrade")
	propbin.Record[ItemCharges](b, "ItemCharges")
	propbin.Record[ItemEvolution](b, "ItemEvolution")
	propbin.Record[ItemConsumable](b, "ItemConsumable")
	propbin.Record[ItemTrinket](b, "ItemTrinket")
	propbin.Record[ItemEffectStat](b, "ItemEffectStat")
	propbin.Record[ItemEffectBuff](b, "ItemEffectBuff")
	propbin.Record[ItemEffectSpell](b, "ItemEffectSpell")
	propbin.Record[ItemEffectOnHit](b, "ItemEffectOnHit")
	propbin.Record[ItemEffectShield](b, "ItemEffectShield")
	propbin.Record[ItemEffectHeal](b, "ItemEffectHeal")
	propbin.Record[ItemEffectMovementBurst](b, "ItemEffectMovementBurst")
	propbin.Record[ItemEffectCooldownRefund](b, "ItemEffectCooldownRefund")
	propbin.Record[ItemEffectGoldGeneration](b, "ItemEffectGoldGeneration")
	propbin.Record[ItemEffectDamageAmp](b, "ItemEffectDamageAmp")
	propbin.Variant[EnumItemEffect](b, "EnumItemEffect",
		propbin.Case[ItemEffectStat](),
		propbin.Case[ItemEffectBuff](),
		propbin.Case[ItemEffectSpell](),
		propbin.Case[ItemEffectOnHit](),
		propbin.Case[ItemEffectShield](),
		propbin.Case[ItemEffectHeal](),
		propbin.Case[ItemEffectMovementBurst](),
		propbin.Case[ItemEffectCooldownRefund](),
		propbin.Case[ItemEffectGoldGeneration](),
		propbin.Case[ItemEffectDamageAmp](),
	)

	propbin.Record[ShopFilterByStat](b, "ShopFilterByStat")
	propbin.Record[ShopFilterByTag](b, "ShopFilterByTag")
	propbin.Record[ShopFilterByPrice](b, "ShopFilterByPrice")
	propbin.Record[ShopFilterByRole](b, "ShopFilterByRole")
	propbin.Record[ShopFilterByMap](b, "ShopFilterByMap")
	propbin.Record[ShopFilterByMode](b, "ShopFilterByMode")
	propbin.Record[ShopFilterByRarity](b, "ShopFilterByRarity")
	propbin.Record[ShopFilterOwned](b, "ShopFilterOwned")
	propbin.Record[ShopFilterPurchasable](b, "ShopFilterPurchasable")
	propbin.Record[ShopFilterAll](b, "ShopFilterAll")
	propbin.Record[ShopFilterAnd](b, "ShopFilterAnd")
	propbin.Record[ShopFilterOr](b, "ShopFilterOr")
	propbin.Record[ShopFilterNot](b, "ShopFilterNot")
	propbin.Variant[EnumShopFilter](b, "EnumShopFilter",
		propbin.Case[ShopFilterByStat](),
		propbin.Case[ShopFilterByTag](),
		propbin.Case[ShopFilterByPrice](),
		propbin.Case[ShopFilterByRole](),
		propbin.Case[ShopFilterByMap](),
		propbin.Case[ShopFilterByMode](),
		propbin.Case[ShopFilterByRarity](),
		propbin.Case[ShopFilterOwned](),
		propbin.Case[ShopFilterPurchasable](),
		propbin.Case[ShopFilterAll](),
		propbin.Case[ShopFilterAnd](),
		propbin.Case[ShopFilterOr](),
		propbin.Case[ShopFilterNot](),
	)

	propbin.Record[RecItemConditionChampion](b, "RecItemConditionChampion")
	propbin.Record[RecItemConditionRole](b, "RecItemConditionRole")
	propbin.Record[RecItemConditionMap](b, "RecItemConditionMap")
	propbin.Record[RecItemConditionGameTime](b, "RecItemConditionGameTime")
	propbin.Record[RecItemConditionEnemyDamage](b, "RecItemConditionEnemyDamage")
	propbin.Record[RecItemConditionOwnsItem](b, "RecItemConditionOwnsItem")
	propbin.Record[RecItemConditionAlways](b, "RecItemConditionAlways")
	propbin.Variant[EnumRecItemCondition](b, "EnumRecItemCondition",
		propbin.Case[RecItemConditionChampion](),
		propbin.Case[RecItemConditionRole](),
		propbin.Case[RecItemConditionMap](),
		propbin.Case[RecItemConditionGameTime](),
		propbin.Case[RecItemConditionEnemyDamage](),
		propbin.Case[RecItemConditionOwnsItem](),
		propbin.Case[RecItemConditionAlways](),
	)

	propbin.Record[RecItemList](b, "RecItemList", propbin.AsAsset())
	propbin.Record[RecItemBlock](b, "RecItemBlock")
	propbin.Record[RecItemItem](b, "RecItemItem")
	propbin.Record[ShopPriceFixed](b, "ShopPriceFixed")
	propbin.Record[ShopPriceDiscounted](b, "ShopPriceDiscounted")
	propbin.Record[ShopPriceScaled](b, "ShopPriceScaled")
	propbin.Record[ShopPriceFree](b, "ShopPriceFree")
	propbin.Variant[EnumShopPriceRule](b, "EnumShopPriceRule",
		propbin.Case[ShopPriceFixed](),
		propbin.Case[ShopPriceDiscounted](),
		propbin.Case[ShopPriceScaled](),
		propbin.Case[ShopPriceFree](),
	)

	propbin.Record[ShopCurrencyDef](b, "ShopCurrencyDef", propbin.AsAsset())
	propbin.Record[ShopCurrencyCost](b, "ShopCurrencyCost")
	propbin.Record[ShopOffer](b, "ShopOffer")
	propbin.Record[ShopBundleOffer](b, "ShopBundleOffer")
	propbin.Record[ShopStorefront](b, "ShopStorefront", propbin.AsAsset())
	propbin.Record[ShopItemCategory](b, "ShopItemCategory")
	propbin.Record[ShopCategoryTab](b, "ShopCategoryTab")
	propbin.Record[ShopLayoutData](b, "ShopLayoutData", propbin.AsAsset())
	propbin.Record[ShopGridCell](b, "ShopGridCell")
	propbin.Record[ShopSearchAlias](b, "ShopSearchAlias")
	propbin.Record[ShopQuickBuySlot](b, "ShopQuickBuySlot")
	propbin.Record[ShopUndoPolicy](b, "ShopUndoPolicy")
	propbin.Record[ShopSellPolicy](b, "ShopSellPolicy")
	propbin.Record[ShopInventoryRules](b, "ShopInventoryRules")
	propbin.Record[ShopKeeperLines](b, "ShopKeeperLines")
	propbin.Record[ShopSoundEvents](b, "ShopSoundEvents")
	propbin.Record[ItemCooldownGroup](b, "ItemCooldownGroup", propbin.AsAsset())
	propbin.Record[ItemUniqueGroup](b, "ItemUniqueGroup", propbin.AsAsset())
	propbin.Record[ShopData](b, "ShopData", propbin.AsAsset())
}
