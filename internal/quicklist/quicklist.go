// Package quicklist holds the fixed index member lists offered as one-click
// symbol prefill. Adding a market means adding a constant and a map entry.
package quicklist

import (
	"strategy-scanner/internal/dto"
)

// NASDAQ100 holds 101 tickers: the index has 100 companies, Alphabet is listed twice (GOOG, GOOGL).
const NASDAQ100 = "AAPL,ABNB,ADBE,ADI,ADP,ADSK,AEP,AMAT,AMD,AMGN,AMZN,ANSS,ARM,ASML,AVGO,AZN,BIIB,BKNG,BKR,CCEP,CDNS,CDW,CEG,CHTR,CMCSA,COST,CPRT,CRWD,CSCO,CSGP,CSX,CTAS,CTSH,DASH,DDOG,DLTR,DXCM,EA,EXC,FANG,FAST,FTNT,GEHC,GFS,GILD,GOOG,GOOGL,HON,IDXX,ILMN,INTC,INTU,ISRG,KDP,KHC,KLAC,LIN,LRCX,LULU,MAR,MCHP,MDB,MDLZ,MELI,META,MNST,MRNA,MRVL,MSFT,MU,NFLX,NVDA,NXPI,ODFL,ON,ORLY,PANW,PAYX,PCAR,PDD,PEP,PYPL,QCOM,REGN,ROP,ROST,SBUX,SMCI,SNPS,TEAM,TMUS,TSLA,TTD,TTWO,TXN,VRSK,VRTX,WBD,WDAY,XEL,ZS"

const NIFTY50 = "ADANIENT,ADANIPORTS,APOLLOHOSP,ASIANPAINT,AXISBANK,BAJAJ-AUTO,BAJFINANCE,BAJAJFINSV,BPCL,BHARTIARTL,BRITANNIA,CIPLA,COALINDIA,DIVISLAB,DRREDDY,EICHERMOT,GRASIM,HCLTECH,HDFCBANK,HDFCLIFE,HEROMOTOCO,HINDALCO,HINDUNILVR,ICICIBANK,ITC,INDUSINDBK,INFY,JSWSTEEL,KOTAKBANK,LTIM,LT,M&M,MARUTI,NTPC,NESTLEIND,ONGC,POWERGRID,RELIANCE,SBILIFE,SHRIRAMFIN,SBIN,SUNPHARMA,TCS,TATACONSUM,TATAMOTORS,TATASTEEL,TECHM,TITAN,ULTRACEMCO,WIPRO"

var lists = map[dto.Market]dto.QuickList{
	dto.MarketUS:    {Name: "NASDAQ 100", Market: dto.MarketUS, Symbols: NASDAQ100},
	dto.MarketIndia: {Name: "NIFTY 50", Market: dto.MarketIndia, Symbols: NIFTY50},
}

// ForMarket returns the quick-list of market. The value is a copy; callers
// cannot alter the shared constants.
func ForMarket(market dto.Market) (dto.QuickList, bool) {
	list, ok := lists[market]
	return list, ok
}

// Symbols is ForMarket without the metadata; unknown markets yield "".
func Symbols(market dto.Market) string {
	return lists[market].Symbols
}
