// Package data ships the built-in financial English vocabulary. The
// entries are compiled in so a fresh install can seed its store without
// any network access.
package data

import (
	"strings"
	"time"

	"github.com/shenqiangbin-cmd-eng/financeEnglish/internal/entities"
)

// seededAt is the fixed authoring date of the built-in dataset. Seeded
// rows keep it so re-imports stay idempotent.
var seededAt = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

func entry(id, word, pronunciation, definition, example, exampleTranslation, category string, difficulty entities.Difficulty, tags ...string) entities.Vocabulary {
	return entities.Vocabulary{
		ID:                 id,
		Word:               word,
		Pronunciation:      pronunciation,
		Definition:         definition,
		Example:            example,
		ExampleTranslation: exampleTranslation,
		Difficulty:         difficulty,
		Category:           category,
		Tags:               tags,
		CreatedAt:          seededAt,
		UpdatedAt:          seededAt,
	}
}

// financialVocabulary is the base dataset of 40 terms.
var financialVocabulary = []entities.Vocabulary{
	entry("1", "asset", "/ˈæset/",
		"资产；财产",
		"The company has valuable assets including real estate and equipment.",
		"该公司拥有包括房地产和设备在内的宝贵资产。",
		"finance", entities.DifficultyBeginner, "accounting", "investment"),
	entry("2", "liability", "/ˌlaɪəˈbɪləti/",
		"负债；债务",
		"The company reduced its liabilities by paying off loans.",
		"公司通过偿还贷款减少了负债。",
		"finance", entities.DifficultyIntermediate, "accounting", "debt"),
	entry("3", "equity", "/ˈekwəti/",
		"股权；净资产",
		"Shareholders equity represents the owners stake in the company.",
		"股东权益代表所有者在公司中的股份。",
		"finance", entities.DifficultyIntermediate, "investment", "stocks"),
	entry("4", "revenue", "/ˈrevənjuː/",
		"收入；营业收入",
		"The company reported a 15% increase in revenue this quarter.",
		"公司报告本季度收入增长了15%。",
		"finance", entities.DifficultyBeginner, "accounting", "income"),
	entry("5", "profit", "/ˈprɒfɪt/",
		"利润；盈利",
		"The business generated a healthy profit margin of 20%.",
		"该企业产生了20%的健康利润率。",
		"finance", entities.DifficultyBeginner, "accounting", "income"),
	entry("6", "dividend", "/ˈdɪvɪdend/",
		"股息；红利",
		"The company declared a quarterly dividend of $0.50 per share.",
		"公司宣布季度股息为每股0.50美元。",
		"finance", entities.DifficultyIntermediate, "investment", "stocks"),
	entry("7", "portfolio", "/pɔːtˈfəʊliəʊ/",
		"投资组合；资产组合",
		"A diversified portfolio helps reduce investment risk.",
		"多元化的投资组合有助于降低投资风险。",
		"finance", entities.DifficultyIntermediate, "investment", "risk"),
	entry("8", "volatility", "/ˌvɒləˈtɪləti/",
		"波动性；不稳定性",
		"High volatility in the stock market makes investors nervous.",
		"股市的高波动性让投资者感到紧张。",
		"finance", entities.DifficultyAdvanced, "investment", "risk", "market"),
	entry("9", "liquidity", "/lɪˈkwɪdəti/",
		"流动性；变现能力",
		"Cash provides the highest liquidity among all assets.",
		"现金在所有资产中提供最高的流动性。",
		"finance", entities.DifficultyAdvanced, "investment", "cash"),
	entry("10", "inflation", "/ɪnˈfleɪʃn/",
		"通胀；通货膨胀",
		"Rising inflation erodes the purchasing power of money.",
		"通胀上升侵蚀了货币的购买力。",
		"finance", entities.DifficultyIntermediate, "economy", "monetary"),
	entry("11", "recession", "/rɪˈseʃn/",
		"经济衰退；萧条",
		"The country entered a recession after two consecutive quarters of negative growth.",
		"该国在连续两个季度负增长后进入了经济衰退。",
		"finance", entities.DifficultyIntermediate, "economy", "growth"),
	entry("12", "GDP", "/ˌdʒiː diː ˈpiː/",
		"国内生产总值 (Gross Domestic Product)",
		"The countrys GDP grew by 3.2% last year.",
		"该国去年的GDP增长了3.2%。",
		"economics", entities.DifficultyBeginner, "economy", "growth", "statistics"),
	entry("13", "interest rate", "/ˈɪntrəst reɪt/",
		"利率",
		"The central bank raised interest rates to combat inflation.",
		"央行提高利率以对抗通胀。",
		"finance", entities.DifficultyBeginner, "banking", "monetary"),
	entry("14", "mortgage", "/ˈmɔːɡɪdʒ/",
		"抵押贷款",
		"They applied for a 30-year mortgage to buy their first home.",
		"他们申请了30年期抵押贷款来购买第一套房子。",
		"finance", entities.DifficultyIntermediate, "loan", "real estate"),
	entry("15", "credit score", "/ˈkredɪt skɔːr/",
		"信用评分",
		"A good credit score helps you get better loan terms.",
		"良好的信用评分有助于获得更好的贷款条件。",
		"finance", entities.DifficultyIntermediate, "credit", "loan"),
	entry("16", "budget", "/ˈbʌdʒɪt/",
		"预算",
		"Creating a monthly budget helps track your expenses.",
		"制定月度预算有助于跟踪支出。",
		"finance", entities.DifficultyBeginner, "planning", "money management"),
	entry("17", "savings", "/ˈseɪvɪŋz/",
		"储蓄；存款",
		"Building an emergency savings fund is crucial for financial security.",
		"建立应急储蓄基金对财务安全至关重要。",
		"finance", entities.DifficultyBeginner, "money management", "planning"),
	entry("18", "investment", "/ɪnˈvestmənt/",
		"投资",
		"Long-term investments typically offer better returns than short-term ones.",
		"长期投资通常比短期投资提供更好的回报。",
		"finance", entities.DifficultyBeginner, "money management", "growth"),
	entry("19", "compound interest", "/ˈkɒmpaʊnd ˈɪntrəst/",
		"复利",
		"Compound interest is the eighth wonder of the world according to Einstein.",
		"据爱因斯坦说，复利是世界第八大奇迹。",
		"finance", entities.DifficultyIntermediate, "investment", "growth"),
	entry("20", "diversification", "/daɪˌvɜːsɪfɪˈkeɪʃn/",
		"多元化；分散投资",
		"Diversification across different asset classes reduces portfolio risk.",
		"跨不同资产类别的多元化降低了投资组合风险。",
		"finance", entities.DifficultyAdvanced, "investment", "risk", "strategy"),
	entry("21", "bull market", "/bʊl ˈmɑːkɪt/",
		"牛市；上涨市场",
		"The stock market has been in a bull market for the past five years.",
		"股市在过去五年中一直处于牛市。",
		"trading", entities.DifficultyIntermediate, "market", "trend"),
	entry("22", "bear market", "/beər ˈmɑːkɪt/",
		"熊市；下跌市场",
		"Investors are worried about entering a bear market.",
		"投资者担心进入熊市。",
		"trading", entities.DifficultyIntermediate, "market", "trend"),
	entry("23", "bid", "/bɪd/",
		"买价；出价",
		"The current bid price for the stock is $45.50.",
		"该股票当前的买价是45.50美元。",
		"trading", entities.DifficultyBeginner, "price", "order"),
	entry("24", "ask", "/æsk/",
		"卖价；要价",
		"The ask price is typically higher than the bid price.",
		"卖价通常高于买价。",
		"trading", entities.DifficultyBeginner, "price", "order"),
	entry("25", "spread", "/spred/",
		"价差；买卖差价",
		"The bid-ask spread on this stock is quite narrow.",
		"这只股票的买卖差价相当窄。",
		"trading", entities.DifficultyIntermediate, "price", "market"),
	entry("26", "volume", "/ˈvɒljuːm/",
		"成交量；交易量",
		"High trading volume often indicates strong investor interest.",
		"高交易量通常表明投资者兴趣浓厚。",
		"trading", entities.DifficultyBeginner, "market", "activity"),
	entry("27", "market cap", "/ˈmɑːkɪt kæp/",
		"市值；市场资本化",
		"Apple has one of the largest market caps in the world.",
		"苹果公司拥有世界上最大的市值之一。",
		"trading", entities.DifficultyIntermediate, "valuation", "stocks"),
	entry("28", "IPO", "/ˌaɪ piː ˈəʊ/",
		"首次公开募股 (Initial Public Offering)",
		"The company is planning an IPO next year.",
		"该公司计划明年进行首次公开募股。",
		"trading", entities.DifficultyIntermediate, "stocks", "public offering"),
	entry("29", "earnings", "/ˈɜːnɪŋz/",
		"收益；盈利",
		"The company exceeded earnings expectations this quarter.",
		"该公司本季度的收益超出了预期。",
		"finance", entities.DifficultyBeginner, "income", "performance"),
	entry("30", "P/E ratio", "/piː iː ˈreɪʃiəʊ/",
		"市盈率 (Price-to-Earnings ratio)",
		"A high P/E ratio might indicate an overvalued stock.",
		"高市盈率可能表明股票被高估。",
		"finance", entities.DifficultyAdvanced, "valuation", "ratio"),
	entry("31", "forex", "/ˈfɔːreks/",
		"外汇；外汇市场",
		"Forex trading involves buying and selling currencies.",
		"外汇交易涉及买卖货币。",
		"forex", entities.DifficultyIntermediate, "currency", "trading"),
	entry("32", "currency pair", "/ˈkʌrənsi peər/",
		"货币对",
		"EUR/USD is the most traded currency pair in forex.",
		"EUR/USD是外汇市场中交易量最大的货币对。",
		"forex", entities.DifficultyIntermediate, "currency", "trading"),
	entry("33", "pip", "/pɪp/",
		"点；基点",
		"The EUR/USD moved 50 pips higher today.",
		"EUR/USD今天上涨了50个点。",
		"forex", entities.DifficultyAdvanced, "currency", "measurement"),
	entry("34", "leverage", "/ˈliːvərɪdʒ/",
		"杠杆；杠杆作用",
		"High leverage can amplify both profits and losses.",
		"高杠杆可以放大利润和损失。",
		"forex", entities.DifficultyAdvanced, "risk", "trading"),
	entry("35", "margin", "/ˈmɑːdʒɪn/",
		"保证金；利润率",
		"You need sufficient margin to open a leveraged position.",
		"你需要足够的保证金来开立杠杆头寸。",
		"forex", entities.DifficultyIntermediate, "trading", "requirement"),
	entry("36", "derivative", "/dɪˈrɪvətɪv/",
		"衍生品；金融衍生工具",
		"Options and futures are common types of derivatives.",
		"期权和期货是常见的衍生品类型。",
		"derivatives", entities.DifficultyAdvanced, "instruments", "complex"),
	entry("37", "option", "/ˈɒpʃn/",
		"期权",
		"A call option gives you the right to buy a stock at a specific price.",
		"看涨期权给你以特定价格购买股票的权利。",
		"derivatives", entities.DifficultyAdvanced, "instruments", "rights"),
	entry("38", "futures", "/ˈfjuːtʃəz/",
		"期货",
		"Futures contracts obligate you to buy or sell at a future date.",
		"期货合约义务你在未来日期买入或卖出。",
		"derivatives", entities.DifficultyAdvanced, "contracts", "obligations"),
	entry("39", "swap", "/swɒp/",
		"掉期；互换",
		"Interest rate swaps are used to hedge against rate changes.",
		"利率掉期用于对冲利率变化。",
		"derivatives", entities.DifficultyAdvanced, "hedging", "exchange"),
	entry("40", "hedge", "/hedʒ/",
		"对冲；套期保值",
		"Companies hedge currency risk to protect against exchange rate fluctuations.",
		"公司对冲货币风险以防范汇率波动。",
		"derivatives", entities.DifficultyAdvanced, "risk management", "protection"),
}

// FinancialVocabulary returns a copy of the built-in dataset. Callers may
// mutate the result freely.
func FinancialVocabulary() []entities.Vocabulary {
	out := make([]entities.Vocabulary, len(financialVocabulary))
	copy(out, financialVocabulary)
	return out
}

// Count is the number of built-in entries.
func Count() int {
	return len(financialVocabulary)
}

// ByCategory returns the built-in entries in the given category.
func ByCategory(category string) []entities.Vocabulary {
	var out []entities.Vocabulary
	for _, v := range financialVocabulary {
		if v.Category == category {
			out = append(out, v)
		}
	}
	return out
}

// ByDifficulty returns the built-in entries at the given level.
func ByDifficulty(difficulty entities.Difficulty) []entities.Vocabulary {
	var out []entities.Vocabulary
	for _, v := range financialVocabulary {
		if v.Difficulty == difficulty {
			out = append(out, v)
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order.
func Categories() []string {
	var out []string
	seen := map[string]bool{}
	for _, v := range financialVocabulary {
		if !seen[v.Category] {
			seen[v.Category] = true
			out = append(out, v.Category)
		}
	}
	return out
}

// Search matches query case-insensitively against word, definition and
// tags.
func Search(query string) []entities.Vocabulary {
	query = strings.ToLower(query)
	var out []entities.Vocabulary
	for _, v := range financialVocabulary {
		if strings.Contains(strings.ToLower(v.Word), query) ||
			strings.Contains(strings.ToLower(v.Definition), query) {
			out = append(out, v)
			continue
		}
		for _, tag := range v.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				out = append(out, v)
				break
			}
		}
	}
	return out
}
